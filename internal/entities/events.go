package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderCancelled     = "order.cancelled"
)

type OrderEvent struct {
	EventID     string
	EventType   string
	OccurredAt  time.Time
	OrderID     string
	OrderNumber string
	Status      Status
	// previous status, empty for order.created
	PreviousStatus Status
	Total          decimal.Decimal
	Lines          []OrderLine
}

func NewOrderEvent(eventType string, o Order, previous Status) OrderEvent {
	return OrderEvent{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		OccurredAt:     time.Now().UTC(),
		OrderID:        o.ID,
		OrderNumber:    o.OrderNumber,
		Status:         o.Status,
		PreviousStatus: previous,
		Total:          o.Total(),
		Lines:          o.Lines,
	}
}
