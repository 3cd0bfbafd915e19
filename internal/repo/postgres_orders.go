package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresOrderRepo struct {
	postgresRepo
}

func NewPostgresOrderRepo(db *sqlx.DB) *postgresOrderRepo {
	return &postgresOrderRepo{postgresRepo: newPostgresRepo(db)}
}

// Create stores the order row and its lines. A clash on order_number is
// reported as ErrDuplicateResource without aborting the surrounding tx.
func (r *postgresOrderRepo) Create(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(o.ID, o.OrderNumber, o.CustomerName, o.CustomerEmail, o.Status.String(), o.CreatedAt, o.UpdatedAt).
		Suffix("ON CONFLICT (order_number) DO NOTHING").
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	if !ok {
		return entities.Duplicate("order", "number", o.OrderNumber)
	}

	if len(o.Lines) == 0 {
		return nil
	}

	q := r.qb.Insert("order_lines").Columns(orderLineColumns...)
	for i, l := range o.Lines {
		q = q.Values(l.ID, o.ID, l.ProductID, l.ProductName, l.Quantity, l.UnitPrice, i)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order lines: %w", err)
	}
	return nil
}

func (r *postgresOrderRepo) GetByID(ctx context.Context, id string) (entities.Order, error) {
	return r.getOne(ctx, r.qb.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}), "id", id)
}

// GetByIDForUpdate locks the order row until the surrounding tx ends.
func (r *postgresOrderRepo) GetByIDForUpdate(ctx context.Context, id string) (entities.Order, error) {
	return r.getOne(ctx, r.qb.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"), "id", id)
}

func (r *postgresOrderRepo) GetByNumber(ctx context.Context, number string) (entities.Order, error) {
	return r.getOne(ctx, r.qb.Select(orderColumns...).From("orders").Where(sq.Eq{"order_number": number}), "number", number)
}

func (r *postgresOrderRepo) getOne(ctx context.Context, q sq.SelectBuilder, field, value string) (entities.Order, error) {
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.NotFound("order", field, value)
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	lines, err := r.linesByOrder(ctx, []string{order.ID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, lines[order.ID]), nil
}

func (r *postgresOrderRepo) List(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).From("orders").OrderBy("created_at DESC", "id")

	if f.CustomerEmail != "" {
		q = q.Where(sq.Eq{"customer_email": f.CustomerEmail})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status.String()})
	}
	if f.CreatedFrom != nil {
		q = q.Where(sq.GtOrEq{"created_at": *f.CreatedFrom})
	}
	if f.CreatedTo != nil {
		q = q.Where(sq.LtOrEq{"created_at": *f.CreatedTo})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	lines, err := r.linesByOrder(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, lines[order.ID]))
	}
	return result, nil
}

func (r *postgresOrderRepo) linesByOrder(ctx context.Context, orderIDs []string) (map[string][]OrderLine, error) {
	query, args := r.qb.Select(orderLineColumns...).
		From("order_lines").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order lines: %w", err)
	}

	linesMap := make(map[string][]OrderLine, len(orderIDs))
	for _, l := range lines {
		linesMap[l.OrderID] = append(linesMap[l.OrderID], l)
	}
	return linesMap, nil
}

func (r *postgresOrderRepo) CountByStatus(ctx context.Context) (map[entities.Status]int, error) {
	query, args := r.qb.Select("status", "COUNT(*) AS count").
		From("orders").
		GroupBy("status").
		MustSql()

	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	counts := make(map[entities.Status]int, len(entities.Statuses))
	for _, s := range entities.Statuses {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[entities.Status(row.Status)] = row.Count
	}
	return counts, nil
}

// UpdateStatus moves the order from one status to another. It reports false
// when the order is missing or no longer in the from status.
func (r *postgresOrderRepo) UpdateStatus(ctx context.Context, id string, from, to entities.Status) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", to.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "status": from.String()}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	return ok, nil
}
