package handler

import (
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	"github.com/shopspring/decimal"
)

// ProductRequest is the body of product create and update calls
type ProductRequest struct {
	Name        string          `json:"name" validate:"required" example:"Mechanical Keyboard"`
	Description string          `json:"description,omitempty" example:"Tenkeyless, brown switches"`
	Price       decimal.Decimal `json:"price" swaggertype:"string" example:"89.90"`
	// ignored on update, use the stock endpoints instead
	StockQuantity int    `json:"stock_quantity" validate:"gte=0" example:"25"`
	Category      string `json:"category" validate:"required" example:"peripherals"`
	SKU           string `json:"sku,omitempty" example:"KB-TKL-BRN"`
	Active        *bool  `json:"active,omitempty"`
}

func (p ProductRequest) toInput() entities.ProductInput {
	return entities.ProductInput{
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Category:      p.Category,
		SKU:           p.SKU,
		Active:        p.Active,
	}
}

// Product is a catalog entry
type Product struct {
	ID            string    `json:"id" example:"5b0a0c0e-8d8e-4c55-9a3b-1f0e1d5c2a11"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         string    `json:"price" example:"89.90"`
	StockQuantity int       `json:"stock_quantity"`
	Category      string    `json:"category"`
	SKU           string    `json:"sku,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func productToJSON(p entities.Product) Product {
	return Product{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         money(p.Price),
		StockQuantity: p.StockQuantity,
		Category:      p.Category,
		SKU:           p.SKU,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func productsToJSON(ps []entities.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, productToJSON(p))
	}
	return out
}

// StockCheck is the answer of the advisory availability check
type StockCheck struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Available bool   `json:"available"`
}

type DiscountedPrice struct {
	ProductID string `json:"product_id"`
	Percent   string `json:"percent" example:"15"`
	Price     string `json:"price" example:"76.42"`
}

type Amount struct {
	Total string `json:"total" example:"130.00"`
}

type StatusCount struct {
	Status string `json:"status" example:"PENDING"`
	Count  int    `json:"count"`
}

// CreateOrderRequest is the body of the order placement call
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" example:"Jane Doe"`
	CustomerEmail string             `json:"customer_email" example:"jane@example.com"`
	Lines         []OrderLineRequest `json:"lines" validate:"dive"`
}

type OrderLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" example:"2"`
}

func (o CreateOrderRequest) toInput() entities.CreateOrderInput {
	lines := make([]entities.OrderLineInput, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, entities.OrderLineInput{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return entities.CreateOrderInput{
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Lines:         lines,
	}
}

// Order is a placed order with its priced lines
type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"order_number" example:"ORD-1A2B3C4D"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Status        string      `json:"status" example:"PENDING"`
	Lines         []OrderLine `json:"lines"`
	Total         string      `json:"total" example:"130.00"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type OrderLine struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price" example:"50.00"`
	Total       string `json:"total" example:"100.00"`
}

func orderToJSON(o entities.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLine{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   money(l.UnitPrice),
			Total:       money(l.Total()),
		})
	}

	return Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Status:        o.Status.String(),
		Lines:         lines,
		Total:         money(o.Total()),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func ordersToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderToJSON(o))
	}
	return out
}

// StockAdjustmentMessage is a stock command read from kafka
type StockAdjustmentMessage struct {
	ProductID string `json:"product_id" validate:"required"`
	Operation string `json:"operation" validate:"required,oneof=add set"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

func (m StockAdjustmentMessage) toEntity() entities.StockAdjustment {
	return entities.StockAdjustment{
		ProductID: m.ProductID,
		Operation: entities.AdjustmentOperation(m.Operation),
		Quantity:  m.Quantity,
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
