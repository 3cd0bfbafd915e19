package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	codeUniqueViolation     pq.ErrorCode = "23505"
	codeForeignKeyViolation pq.ErrorCode = "23503"
)

// postgresRepo holds what the product and order repositories share: the pool,
// the query builder and the tx-aware exec helpers.
type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func newPostgresRepo(db *sqlx.DB) postgresRepo {
	return postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.ExecutorFrom(ctx, r.db).GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.ExecutorFrom(ctx, r.db).SelectContext(ctx, dest, query, args...)
}

// execAffected runs a statement and reports whether it touched any row.
func (r *postgresRepo) execAffected(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func pqErrorCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}
