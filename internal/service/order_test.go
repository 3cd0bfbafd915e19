package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"
	mocks "github.com/SergeyBogomolovv/fulfillment-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/fulfillment-service/pkg/trm/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	products  *mocks.MockProductRepo
	orders    *mocks.MockOrderRepo
	ledger    *mocks.MockStockLedger
	cache     *mocks.MockCache
	publisher *mocks.MockEventPublisher
	tx        *txMocks.MockManager
}

func newDeps(t *testing.T) deps {
	d := deps{
		products:  mocks.NewMockProductRepo(t),
		orders:    mocks.NewMockOrderRepo(t),
		ledger:    mocks.NewMockStockLedger(t),
		cache:     mocks.NewMockCache(t),
		publisher: mocks.NewMockEventPublisher(t),
		tx:        txMocks.NewMockManager(t),
	}
	d.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return d
}

func (d deps) service() interface {
	CreateOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error)
	CancelOrder(ctx context.Context, id string) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
} {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, d.tx, d.products, d.orders, d.ledger, d.cache, d.publisher)
}

var (
	keyboard = entities.Product{ID: "p1", Name: "Keyboard", Price: decimal.RequireFromString("50.00"), StockQuantity: 10, Active: true}
	mouse    = entities.Product{ID: "p2", Name: "Mouse", Price: decimal.RequireFromString("30.00"), StockQuantity: 10, Active: true}
)

func twoLineInput() entities.CreateOrderInput {
	return entities.CreateOrderInput{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Lines: []entities.OrderLineInput{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(d deps)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(d deps) {
				d.products.EXPECT().GetByID(mock.Anything, "p1").Return(keyboard, nil)
				d.products.EXPECT().GetByID(mock.Anything, "p2").Return(mouse, nil)
				d.ledger.EXPECT().Reserve(mock.Anything, "p1", 2).Return(nil).Once()
				d.ledger.EXPECT().Reserve(mock.Anything, "p2", 1).Return(nil).Once()
				d.orders.EXPECT().Create(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == entities.StatusPending && o.Total().Equal(decimal.RequireFromString("130"))
				})).Return(nil).Once()
				d.cache.EXPECT().Set(mock.Anything, mock.Anything).Return().Once()
				d.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
					return e.EventType == entities.EventOrderCreated
				})).Return(nil).Once()
			},
		},
		{
			name: "persist fails, reservations released",
			mockBehavior: func(d deps) {
				d.products.EXPECT().GetByID(mock.Anything, "p1").Return(keyboard, nil)
				d.products.EXPECT().GetByID(mock.Anything, "p2").Return(mouse, nil)
				d.ledger.EXPECT().Reserve(mock.Anything, "p1", 2).Return(nil).Once()
				d.ledger.EXPECT().Reserve(mock.Anything, "p2", 1).Return(nil).Once()
				d.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(dbError).Once()
				d.ledger.EXPECT().Release(mock.Anything, "p2", 1).Return(nil).Once()
				d.ledger.EXPECT().Release(mock.Anything, "p1", 2).Return(nil).Once()
			},
			wantErr: dbError,
		},
		{
			name: "second reserve fails, first released",
			mockBehavior: func(d deps) {
				d.products.EXPECT().GetByID(mock.Anything, "p1").Return(keyboard, nil)
				d.products.EXPECT().GetByID(mock.Anything, "p2").Return(mouse, nil).Once()
				d.ledger.EXPECT().Reserve(mock.Anything, "p1", 2).Return(nil).Once()
				d.ledger.EXPECT().Reserve(mock.Anything, "p2", 1).Return(&entities.InsufficientStockError{
					ProductID: "p2", ProductName: "Mouse", Available: 0, Requested: 1,
				}).Once()
				d.ledger.EXPECT().Release(mock.Anything, "p1", 2).Return(nil).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name: "order number collision regenerates number",
			mockBehavior: func(d deps) {
				d.products.EXPECT().GetByID(mock.Anything, "p1").Return(keyboard, nil)
				d.products.EXPECT().GetByID(mock.Anything, "p2").Return(mouse, nil)
				d.ledger.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

				var first string
				d.orders.EXPECT().Create(mock.Anything, mock.Anything).
					Run(func(_ context.Context, o entities.Order) { first = o.OrderNumber }).
					Return(entities.Duplicate("order", "number", "taken")).Once()
				d.orders.EXPECT().Create(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.OrderNumber != first
				})).Return(nil).Once()

				d.cache.EXPECT().Set(mock.Anything, mock.Anything).Return().Once()
				d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "publish failure does not fail the order",
			mockBehavior: func(d deps) {
				d.products.EXPECT().GetByID(mock.Anything, mock.Anything).Return(keyboard, nil)
				d.ledger.EXPECT().Reserve(mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
				d.orders.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
				d.cache.EXPECT().Set(mock.Anything, mock.Anything).Return().Once()
				d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
		{
			name: "inactive product rejected before any reservation",
			mockBehavior: func(d deps) {
				inactive := mouse
				inactive.Active = false
				d.products.EXPECT().GetByID(mock.Anything, "p1").Return(keyboard, nil).Once()
				d.products.EXPECT().GetByID(mock.Anything, "p2").Return(inactive, nil).Once()
			},
			wantErr: entities.ErrProductUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			got, err := d.service().CreateOrder(t.Context(), twoLineInput())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got.Lines, 2)
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	type MockBehavior func(d deps)

	placed := entities.Order{
		ID:     "o1",
		Status: entities.StatusConfirmed,
		Lines: []entities.OrderLine{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	}
	cancelled := placed
	cancelled.Status = entities.StatusCancelled

	releaseErr := errors.New("release failed")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetByIDForUpdate(mock.Anything, "o1").Return(placed, nil).Once()
				d.orders.EXPECT().UpdateStatus(mock.Anything, "o1", entities.StatusConfirmed, entities.StatusCancelled).Return(true, nil).Once()
				d.ledger.EXPECT().Release(mock.Anything, "p1", 2).Return(nil).Once()
				d.ledger.EXPECT().Release(mock.Anything, "p2", 1).Return(nil).Once()
				d.orders.EXPECT().GetByID(mock.Anything, "o1").Return(cancelled, nil).Once()
				d.cache.EXPECT().Set("o1", mock.Anything).Return().Once()
				d.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
					return e.EventType == entities.EventOrderCancelled && e.PreviousStatus == entities.StatusConfirmed
				})).Return(nil).Once()
			},
		},
		{
			name: "release fails, status and stock restored",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetByIDForUpdate(mock.Anything, "o1").Return(placed, nil).Once()
				d.orders.EXPECT().UpdateStatus(mock.Anything, "o1", entities.StatusConfirmed, entities.StatusCancelled).Return(true, nil).Once()
				d.ledger.EXPECT().Release(mock.Anything, "p1", 2).Return(nil).Once()
				d.ledger.EXPECT().Release(mock.Anything, "p2", 1).Return(releaseErr).Once()
				d.ledger.EXPECT().Reserve(mock.Anything, "p1", 2).Return(nil).Once()
				d.orders.EXPECT().UpdateStatus(mock.Anything, "o1", entities.StatusCancelled, entities.StatusConfirmed).Return(true, nil).Once()
			},
			wantErr: releaseErr,
		},
		{
			name: "lost race reports the new status",
			mockBehavior: func(d deps) {
				shipped := placed
				shipped.Status = entities.StatusShipped
				d.orders.EXPECT().GetByIDForUpdate(mock.Anything, "o1").Return(placed, nil).Once()
				d.orders.EXPECT().UpdateStatus(mock.Anything, "o1", entities.StatusConfirmed, entities.StatusCancelled).Return(false, nil).Once()
				d.orders.EXPECT().GetByID(mock.Anything, "o1").Return(shipped, nil).Once()
			},
			wantErr: entities.ErrOrderCancellationRejected,
		},
		{
			name: "not found",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetByIDForUpdate(mock.Anything, "o1").
					Return(entities.Order{}, entities.NotFound("order", "id", "o1")).Once()
			},
			wantErr: entities.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			got, err := d.service().CancelOrder(t.Context(), "o1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, got.Status)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	type MockBehavior func(d deps)

	validOrder := entities.Order{ID: "123", Status: entities.StatusPending}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name: "success from cache",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("123").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name: "broken cache entry falls back to repo",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("123").Return([]byte("broken"), true).Once()
				d.cache.EXPECT().Delete("123").Return().Once()
				d.orders.EXPECT().GetByID(mock.Anything, "123").Return(validOrder, nil).Once()
				d.cache.EXPECT().Set("123", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name: "success from repo and set to cache",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("123").Return(nil, false).Once()
				d.orders.EXPECT().GetByID(mock.Anything, "123").Return(validOrder, nil).Once()
				d.cache.EXPECT().Set("123", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name: "not found is not retried",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("123").Return(nil, false).Once()
				d.orders.EXPECT().GetByID(mock.Anything, "123").
					Return(entities.Order{}, entities.NotFound("order", "id", "123")).Once()
			},
			wantErr: entities.ErrNotFound,
		},
		{
			name: "second attempt from repo",
			mockBehavior: func(d deps) {
				d.cache.EXPECT().Get("123").Return(nil, false).Once()
				d.orders.EXPECT().GetByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("some error")).Once()
				d.orders.EXPECT().GetByID(mock.Anything, "123").Return(validOrder, nil).Once()
				d.cache.EXPECT().Set("123", validData).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			tc.mockBehavior(d)

			got, err := d.service().GetOrder(t.Context(), "123")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_WarmUpCache(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	latest := []entities.Order{
		{ID: "o2", Status: entities.StatusConfirmed},
		{ID: "o1", Status: entities.StatusPending},
	}

	testCases := []struct {
		name         string
		count        int
		mockBehavior func(d deps)
		wantErr      bool
	}{
		{
			name:  "disabled",
			count: 0,
		},
		{
			name:  "caches latest orders",
			count: 2,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().List(mock.Anything, entities.OrderFilter{Limit: 2}).Return(latest, nil).Once()
				d.cache.EXPECT().Set("o2", mock.Anything).Once()
				d.cache.EXPECT().Set("o1", mock.Anything).Once()
			},
		},
		{
			name:  "repository failure",
			count: 5,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().List(mock.Anything, entities.OrderFilter{Limit: 5}).Return(nil, errors.New("connection refused")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(d)
			}
			svc := service.NewOrderService(logger, d.tx, d.products, d.orders, d.ledger, d.cache, d.publisher)

			err := svc.WarmUpCache(t.Context(), tc.count)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
