package entities_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("totals are exact", func(t *testing.T) {
		order, err := entities.NewOrder("John", "john@example.com", []entities.OrderLine{
			{ProductID: "p1", Quantity: 2, UnitPrice: decimal.RequireFromString("50.00")},
			{ProductID: "p2", Quantity: 1, UnitPrice: decimal.RequireFromString("30.00")},
		}, now)
		require.NoError(t, err)

		assert.Equal(t, entities.StatusPending, order.Status)
		assert.Equal(t, "130.00", order.Total().StringFixed(2))
		assert.Equal(t, now, order.CreatedAt)
		assert.NotEmpty(t, order.ID)
		for _, l := range order.Lines {
			assert.NotEmpty(t, l.ID)
		}
	})

	t.Run("no float rounding", func(t *testing.T) {
		order, err := entities.NewOrder("John", "john@example.com", []entities.OrderLine{
			{ProductID: "p1", Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")},
			{ProductID: "p2", Quantity: 1, UnitPrice: decimal.RequireFromString("0.20")},
		}, now)
		require.NoError(t, err)
		assert.True(t, order.Total().Equal(decimal.RequireFromString("0.50")))
	})

	t.Run("empty order", func(t *testing.T) {
		_, err := entities.NewOrder("John", "john@example.com", nil, now)
		assert.ErrorIs(t, err, entities.ErrEmptyOrder)
		assert.Equal(t, entities.CodeEmptyOrder, entities.ErrorCode(err))
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := entities.NewOrder("John", "john@example.com", []entities.OrderLine{
			{ProductID: "p1", Quantity: 0, UnitPrice: decimal.NewFromInt(1)},
		}, now)
		assert.ErrorIs(t, err, entities.ErrInvalidQuantity)
	})

	t.Run("lines are copied", func(t *testing.T) {
		lines := []entities.OrderLine{{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromInt(5)}}
		order, err := entities.NewOrder("John", "john@example.com", lines, now)
		require.NoError(t, err)

		lines[0].UnitPrice = decimal.NewFromInt(500)
		assert.Equal(t, "5", order.Lines[0].UnitPrice.String())
	})
}

func TestNewOrderNumber(t *testing.T) {
	re := regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)
	seen := make(map[string]struct{})
	for range 100 {
		n := entities.NewOrderNumber()
		assert.Regexp(t, re, n)
		seen[n] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestOrder_MarshalUnmarshal(t *testing.T) {
	order, err := entities.NewOrder("John", "john@example.com", []entities.OrderLine{
		{ProductID: "p1", ProductName: "Pen", Quantity: 2, UnitPrice: decimal.RequireFromString("1.25")},
	}, time.Now().UTC())
	require.NoError(t, err)

	data, err := order.Marshal()
	require.NoError(t, err)

	var decoded entities.Order
	require.NoError(t, decoded.Unmarshal(data))
	assert.Equal(t, order.ID, decoded.ID)
	assert.True(t, order.Total().Equal(decoded.Total()))

	assert.ErrorIs(t, decoded.Unmarshal([]byte("broken")), entities.ErrInvalidOrder)
	assert.ErrorIs(t, decoded.Unmarshal(nil), entities.ErrInvalidOrder)

	stale := append([]byte{data[0] + 1}, data[1:]...)
	assert.ErrorIs(t, decoded.Unmarshal(stale), entities.ErrInvalidOrder)
}
