package trm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	// Do runs callback in a transaction. Nested calls join the outer one.
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

// Executor is the query surface shared by *sqlx.DB and *sqlx.Tx.
type Executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type txKey struct{}

// WithTx binds tx to ctx, repositories pick it up through ExecutorFrom.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

// ExecutorFrom returns the transaction bound to ctx, or db when there is none.
func ExecutorFrom(ctx context.Context, db *sqlx.DB) Executor {
	if tx := ExtractTx(ctx); tx != nil {
		return tx
	}
	return db
}

type Option func(*sql.TxOptions)

// WithIsolation sets the isolation level of transactions opened by the manager.
func WithIsolation(level sql.IsolationLevel) Option {
	return func(o *sql.TxOptions) { o.Isolation = level }
}

type txManager struct {
	db   *sqlx.DB
	opts sql.TxOptions
}

func NewManager(db *sqlx.DB, opts ...Option) Manager {
	m := &txManager{db: db, opts: sql.TxOptions{Isolation: sql.LevelReadCommitted}}
	for _, opt := range opts {
		opt(&m.opts)
	}
	return m
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	if tx := ExtractTx(ctx); tx != nil {
		return ctx, joinedTx{}, nil
	}
	tx, err := t.db.BeginTxx(ctx, &t.opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return WithTx(ctx, tx), tx, nil
}

func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) (err error) {
	ctx, tx, err := t.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("failed to roll back: %w", rbErr))
		}
	}()

	if err = callback(ctx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// joinedTx is handed out to nested calls, the outer Do owns commit and rollback.
type joinedTx struct{}

func (joinedTx) Commit() error   { return nil }
func (joinedTx) Rollback() error { return nil }

// NewNopManager returns a manager for stores without transactions, such as the
// in-memory repositories. Callers stay responsible for compensation.
func NewNopManager() Manager {
	return nopManager{}
}

type nopManager struct{}

func (nopManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	return ctx, joinedTx{}, nil
}

func (nopManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return callback(ctx)
}
