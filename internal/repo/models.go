package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/shopspring/decimal"
)

var productColumns = []string{
	"id", "name", "description", "price", "stock_quantity",
	"category", "sku", "active", "created_at", "updated_at",
}

var orderColumns = []string{
	"id", "order_number", "customer_name", "customer_email",
	"status", "created_at", "updated_at",
}

var orderLineColumns = []string{
	"id", "order_id", "product_id", "product_name", "quantity", "unit_price", "position",
}

type Product struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Description   sql.NullString  `db:"description"`
	Price         decimal.Decimal `db:"price"`
	StockQuantity int             `db:"stock_quantity"`
	Category      string          `db:"category"`
	SKU           sql.NullString  `db:"sku"`
	Active        bool            `db:"active"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type Order struct {
	ID            string    `db:"id"`
	OrderNumber   string    `db:"order_number"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type OrderLine struct {
	ID          string          `db:"id"`
	OrderID     string          `db:"order_id"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Position    int             `db:"position"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:            p.ID,
		Name:          p.Name,
		Description:   nullStringToString(p.Description),
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Category:      p.Category,
		SKU:           nullStringToString(p.SKU),
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func OrderLineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		ID:          l.ID,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
	}
}

func OrderToEntity(o Order, lines []OrderLine) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Status:        entities.Status(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if len(lines) > 0 {
		order.Lines = make([]entities.OrderLine, 0, len(lines))
		for _, l := range lines {
			order.Lines = append(order.Lines, OrderLineToEntity(l))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
