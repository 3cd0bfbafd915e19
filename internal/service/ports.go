package service

import (
	"context"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
)

type ProductRepo interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	GetBySKU(ctx context.Context, sku string) (entities.Product, error)
	ExistsBySKU(ctx context.Context, sku, excludeID string) (bool, error)
	List(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)

	// Stock mutations report false when nothing was changed: the product is
	// missing or, for DecrementStock, its stock is below quantity.
	DecrementStock(ctx context.Context, id string, quantity int) (bool, error)
	IncrementStock(ctx context.Context, id string, quantity int) (bool, error)
	SetStock(ctx context.Context, id string, quantity int) (bool, error)
}

type OrderRepo interface {
	Create(ctx context.Context, o entities.Order) error
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id string) (entities.Order, error)
	GetByNumber(ctx context.Context, number string) (entities.Order, error)
	List(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.Status]int, error)
	// UpdateStatus applies only while the order is still in from.
	UpdateStatus(ctx context.Context, id string, from, to entities.Status) (bool, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

// StockLedger is the part of the inventory the order flow depends on.
type StockLedger interface {
	Reserve(ctx context.Context, productID string, quantity int) error
	Release(ctx context.Context, productID string, quantity int) error
}
