package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	Category      string
	// empty when the product has no SKU
	SKU       string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasStock is the advisory availability check; reservation re-checks atomically.
func (p Product) HasStock(quantity int) bool {
	return p.Active && p.StockQuantity >= quantity
}

func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.StockQuantity)))
}

// ProductInput holds the caller supplied fields of a product. Update ignores
// StockQuantity: stock only moves through the inventory operations.
type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	Category      string
	SKU           string
	Active        *bool
}

// ProductFilter narrows catalog listings. Zero fields do not filter.
type ProductFilter struct {
	ActiveOnly bool
	Category   string
	// inclusive bounds
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	// strictly below
	StockBelow *int
	// case-insensitive match over name and description
	Keyword string
}

type AdjustmentOperation string

const (
	AdjustmentAdd AdjustmentOperation = "add"
	AdjustmentSet AdjustmentOperation = "set"
)

// StockAdjustment is an external stock command, see the stock-adjustments topic.
type StockAdjustment struct {
	ProductID string
	Operation AdjustmentOperation
	Quantity  int
}
