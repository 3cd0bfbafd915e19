package events

import (
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	"github.com/shopspring/decimal"
)

// OrderEventMessage is the wire form of an order lifecycle event.
type OrderEventMessage struct {
	EventID     string       `json:"event_id"`
	EventType   string       `json:"event_type"`
	OccurredAt  time.Time    `json:"occurred_at"`
	OrderID     string       `json:"order_id"`
	OrderNumber string       `json:"order_number"`
	Status      string       `json:"status"`
	Payload     OrderPayload `json:"payload"`
}

type OrderPayload struct {
	PreviousStatus string          `json:"previous_status,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Lines          []LineMessage   `json:"lines"`
}

type LineMessage struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func toMessage(e entities.OrderEvent) OrderEventMessage {
	lines := make([]LineMessage, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, LineMessage{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	return OrderEventMessage{
		EventID:     e.EventID,
		EventType:   e.EventType,
		OccurredAt:  e.OccurredAt,
		OrderID:     e.OrderID,
		OrderNumber: e.OrderNumber,
		Status:      string(e.Status),
		Payload: OrderPayload{
			PreviousStatus: string(e.PreviousStatus),
			Total:          e.Total,
			Lines:          lines,
		},
	}
}
