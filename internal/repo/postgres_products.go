package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresProductRepo struct {
	postgresRepo
}

func NewPostgresProductRepo(db *sqlx.DB) *postgresProductRepo {
	return &postgresProductRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *postgresProductRepo) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	query, args := r.qb.Insert("products").
		Columns("id", "name", "description", "price", "stock_quantity", "category", "sku", "active").
		Values(p.ID, p.Name, nullString(p.Description), p.Price, p.StockQuantity, p.Category, nullString(p.SKU), p.Active).
		Suffix("RETURNING " + strings.Join(productColumns, ", ")).
		MustSql()

	var row Product
	err := r.getContext(ctx, &row, query, args...)
	if pqErrorCode(err) == codeUniqueViolation {
		return entities.Product{}, entities.Duplicate("product", "SKU", p.SKU)
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return ProductToEntity(row), nil
}

func (r *postgresProductRepo) GetByID(ctx context.Context, id string) (entities.Product, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, "id", id)
}

func (r *postgresProductRepo) GetBySKU(ctx context.Context, sku string) (entities.Product, error) {
	return r.getBy(ctx, sq.Eq{"sku": sku}, "SKU", sku)
}

func (r *postgresProductRepo) getBy(ctx context.Context, where sq.Eq, field, value string) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(where).
		MustSql()

	var row Product
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.NotFound("product", field, value)
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(row), nil
}

func (r *postgresProductRepo) ExistsBySKU(ctx context.Context, sku, excludeID string) (bool, error) {
	q := r.qb.Select("1").From("products").Where(sq.Eq{"sku": sku})
	if excludeID != "" {
		q = q.Where(sq.NotEq{"id": excludeID})
	}
	query, args := q.Prefix("SELECT EXISTS (").Suffix(")").MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check sku: %w", err)
	}
	return exists, nil
}

func (r *postgresProductRepo) List(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	q := r.qb.Select(productColumns...).From("products").OrderBy("name", "id")

	if f.ActiveOnly {
		q = q.Where(sq.Eq{"active": true})
	}
	if f.Category != "" {
		q = q.Where(sq.Eq{"category": f.Category})
	}
	if f.MinPrice != nil {
		q = q.Where(sq.GtOrEq{"price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		q = q.Where(sq.LtOrEq{"price": *f.MaxPrice})
	}
	if f.StockBelow != nil {
		q = q.Where(sq.Lt{"stock_quantity": *f.StockBelow})
	}
	if f.Keyword != "" {
		pattern := "%" + f.Keyword + "%"
		q = q.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}

	query, args := q.MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(rows))
	for _, row := range rows {
		result = append(result, ProductToEntity(row))
	}
	return result, nil
}

func (r *postgresProductRepo) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	query, args := r.qb.Update("products").
		SetMap(map[string]any{
			"name":        p.Name,
			"description": nullString(p.Description),
			"price":       p.Price,
			"category":    p.Category,
			"sku":         nullString(p.SKU),
			"active":      p.Active,
			"updated_at":  sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(productColumns, ", ")).
		MustSql()

	var row Product
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.NotFound("product", "id", p.ID)
	}
	if pqErrorCode(err) == codeUniqueViolation {
		return entities.Product{}, entities.Duplicate("product", "SKU", p.SKU)
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return ProductToEntity(row), nil
}

func (r *postgresProductRepo) Delete(ctx context.Context, id string) error {
	query, args := r.qb.Delete("products").Where(sq.Eq{"id": id}).MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if pqErrorCode(err) == codeForeignKeyViolation {
		return entities.InvalidArgument("product %s is referenced by orders and can not be deleted", id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !ok {
		return entities.NotFound("product", "id", id)
	}
	return nil
}

func (r *postgresProductRepo) Categories(ctx context.Context) ([]string, error) {
	query, args := r.qb.Select("DISTINCT category").
		From("products").
		OrderBy("category").
		MustSql()

	var categories []string
	if err := r.selectContext(ctx, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}
	return categories, nil
}

// DecrementStock subtracts quantity only while enough stock is left. The check
// and the write are one statement, so concurrent reservations can not both pass.
func (r *postgresProductRepo) DecrementStock(ctx context.Context, id string, quantity int) (bool, error) {
	query, args := r.qb.Update("products").
		Set("stock_quantity", sq.Expr("stock_quantity - ?", quantity)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(sq.GtOrEq{"stock_quantity": quantity}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to decrement stock: %w", err)
	}
	return ok, nil
}

func (r *postgresProductRepo) IncrementStock(ctx context.Context, id string, quantity int) (bool, error) {
	query, args := r.qb.Update("products").
		Set("stock_quantity", sq.Expr("stock_quantity + ?", quantity)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to increment stock: %w", err)
	}
	return ok, nil
}

func (r *postgresProductRepo) SetStock(ctx context.Context, id string, quantity int) (bool, error) {
	query, args := r.qb.Update("products").
		Set("stock_quantity", quantity).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to set stock: %w", err)
	}
	return ok, nil
}
