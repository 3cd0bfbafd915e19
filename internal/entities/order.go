package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const orderNumberPrefix = "ORD-"

// OrderLine is a value record owned by its order. ProductID is a plain foreign
// key; name and unit price are snapshots taken when the order was placed.
type OrderLine struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

func (l OrderLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Order struct {
	ID            string
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	Status        Status
	Lines         []OrderLine
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrder builds a PENDING order from already priced lines.
func NewOrder(customerName, customerEmail string, lines []OrderLine, now time.Time) (Order, error) {
	if len(lines) == 0 {
		return Order{}, EmptyOrder()
	}

	owned := make([]OrderLine, len(lines))
	for i, l := range lines {
		if l.Quantity < 1 {
			return Order{}, InvalidQuantity(l.ProductID, l.Quantity)
		}
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		owned[i] = l
	}

	return Order{
		ID:            uuid.NewString(),
		OrderNumber:   NewOrderNumber(),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Status:        StatusPending,
		Lines:         owned,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Total())
	}
	return total
}

// NewOrderNumber returns a human readable token such as ORD-1A2B3C4D.
func NewOrderNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return orderNumberPrefix + strings.ToUpper(id[:8])
}

type OrderLineInput struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	CustomerName  string
	CustomerEmail string
	Lines         []OrderLineInput
}

// OrderFilter narrows order listings, newest first. Zero fields do not filter.
type OrderFilter struct {
	CustomerEmail string
	Status        Status
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	Limit         uint64
}
