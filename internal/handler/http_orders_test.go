package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/fulfillment-service/internal/handler/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderRouter(t *testing.T, svc handler.OrderService) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	handler.NewOrderHandler(logger, svc).Init(r)
	return r
}

func serve(t *testing.T, r http.Handler, method, target, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

var placedOrder = entities.Order{
	ID:            "123",
	OrderNumber:   "ORD-1A2B3C4D",
	CustomerName:  "Jane Doe",
	CustomerEmail: "jane@example.com",
	Status:        entities.StatusPending,
	Lines: []entities.OrderLine{
		{ID: "l1", ProductID: "p1", ProductName: "Keyboard", Quantity: 2, UnitPrice: decimal.RequireFromString("50")},
		{ID: "l2", ProductID: "p2", ProductName: "Mouse", Quantity: 1, UnitPrice: decimal.RequireFromString("30")},
	},
}

func TestOrderHandler_Get(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, "123").
					Return(placedOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"ORD-1A2B3C4D"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.NotFound("order", "id", "not-exist")).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"NOT_FOUND"`,
		},
		{
			name:    "internal error",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrder(mock.Anything, "123").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := serve(t, orderRouter(t, svc), http.MethodGet, "/orders/"+tc.orderID, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
			assert.NotContains(t, body, "db error")

			if tc.wantStatus == http.StatusOK {
				var resp handler.Order
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "130.00", resp.Total)
				assert.Equal(t, "100.00", resp.Lines[0].Total)
				assert.Equal(t, "50.00", resp.Lines[0].UnitPrice)
			}
		})
	}
}

func TestOrderHandler_Create(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: `{"customer_name":"Jane Doe","customer_email":"jane@example.com","lines":[{"product_id":"p1","quantity":2},{"product_id":"p2","quantity":1}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, entities.CreateOrderInput{
						CustomerName:  "Jane Doe",
						CustomerEmail: "jane@example.com",
						Lines: []entities.OrderLineInput{
							{ProductID: "p1", Quantity: 2},
							{ProductID: "p2", Quantity: 1},
						},
					}).
					Return(placedOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"PENDING"`,
		},
		{
			name:         "malformed body",
			body:         `{"customer_name":`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "line without product",
			body:         `{"customer_name":"Jane","customer_email":"jane@example.com","lines":[{"quantity":1}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"ProductID":"required"`,
		},
		{
			name: "empty order",
			body: `{"customer_name":"Jane","customer_email":"jane@example.com","lines":[]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.EmptyOrder()).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"ORDER_EMPTY"`,
		},
		{
			name: "insufficient stock",
			body: `{"customer_name":"Jane","customer_email":"jane@example.com","lines":[{"product_id":"p1","quantity":99}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, &entities.InsufficientStockError{
						ProductID: "p1", ProductName: "Keyboard", Available: 3, Requested: 99,
					}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"INSUFFICIENT_STOCK"`,
		},
		{
			name: "inactive product",
			body: `{"customer_name":"Jane","customer_email":"jane@example.com","lines":[{"product_id":"p1","quantity":1}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ProductUnavailable("Keyboard")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"PRODUCT_NOT_AVAILABLE"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := serve(t, orderRouter(t, svc), http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_StatusChanges(t *testing.T) {
	cancelled := placedOrder
	cancelled.Status = entities.StatusCancelled
	confirmed := placedOrder
	confirmed.Status = entities.StatusConfirmed

	testCases := []struct {
		name         string
		method       string
		target       string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "cancel",
			method: http.MethodPost,
			target: "/orders/123/cancel",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, "123").Return(cancelled, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"CANCELLED"`,
		},
		{
			name:   "cancel shipped",
			method: http.MethodPost,
			target: "/orders/123/cancel",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, "123").
					Return(entities.Order{}, entities.CheckCancellable(entities.StatusShipped)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"ORDER_ALREADY_SHIPPED"`,
		},
		{
			name:   "status update, lower case accepted",
			method: http.MethodPatch,
			target: "/orders/123/status?status=confirmed",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusConfirmed).Return(confirmed, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"CONFIRMED"`,
		},
		{
			name:         "unknown status",
			method:       http.MethodPatch,
			target:       "/orders/123/status?status=LOST",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"code":"INVALID_ARGUMENT"`,
		},
		{
			name:   "transition not allowed",
			method: http.MethodPatch,
			target: "/orders/123/status?status=DELIVERED",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateStatus(mock.Anything, "123", entities.StatusDelivered).
					Return(entities.Order{}, entities.CheckTransition(entities.StatusPending, entities.StatusDelivered)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"INVALID_STATUS_TRANSITION"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := serve(t, orderRouter(t, svc), tc.method, tc.target, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_Queries(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		target       string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "list",
			target: "/orders",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrders(mock.Anything).Return([]entities.Order{placedOrder}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"123"`,
		},
		{
			name:   "empty list is an array",
			target: "/orders",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrders(mock.Anything).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:   "by number",
			target: "/orders/number/ORD-1A2B3C4D",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByNumber(mock.Anything, "ORD-1A2B3C4D").Return(placedOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"123"`,
		},
		{
			name:   "by customer",
			target: "/orders/customer?email=jane@example.com",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListByCustomerEmail(mock.Anything, "jane@example.com").Return([]entities.Order{placedOrder}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"customer_email":"jane@example.com"`,
		},
		{
			name:   "by status",
			target: "/orders/status/PENDING",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListByStatus(mock.Anything, entities.StatusPending).Return([]entities.Order{placedOrder}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"PENDING"`,
		},
		{
			name:   "by date range",
			target: "/orders/date-range?start=2025-01-01T00:00:00Z&end=2025-02-01T00:00:00Z",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListByDateRange(mock.Anything, start, end).Return([]entities.Order{placedOrder}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"123"`,
		},
		{
			name:         "by date range, malformed date",
			target:       "/orders/date-range?start=yesterday&end=2025-02-01T00:00:00Z",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `query parameter start`,
		},
		{
			name:   "count",
			target: "/orders/count/shipped",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CountByStatus(mock.Anything, entities.StatusShipped).Return(4, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"SHIPPED","count":4}`,
		},
		{
			name:   "total",
			target: "/orders/123/total",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CalculateOrderTotal(mock.Anything, "123").Return(decimal.RequireFromString("130"), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"total":"130.00"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := serve(t, orderRouter(t, svc), http.MethodGet, tc.target, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
