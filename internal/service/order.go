package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/trm"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const (
	// attempts to find a free order number within one transaction
	orderNumberAttempts = 3
	// attempts of a conditional status write that lost a race
	statusWriteAttempts = 3
)

// Transactions that hit a serialization failure or a deadlock are replayed
// from the start. Business errors are never retried.
var txRetry = utils.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 50 * time.Millisecond,
	MaxDelay:     500 * time.Millisecond,
	Multiplier:   2,
	Jitter:       0.2,
	Retryable:    trm.IsRetryable,
}

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	products  ProductRepo
	orders    OrderRepo
	ledger    StockLedger
	cache     Cache
	publisher EventPublisher

	group singleflight.Group
	// cacheMu orders cache fills against writes, writes bumps on every
	// status change so a fill that overlapped one is dropped
	cacheMu sync.Mutex
	writes  uint64

	now func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	products ProductRepo,
	orders OrderRepo,
	ledger StockLedger,
	cache Cache,
	publisher EventPublisher,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		products:  products,
		orders:    orders,
		ledger:    ledger,
		cache:     cache,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder reserves stock for every line and stores a PENDING order. Either
// all lines are reserved and the order exists, or nothing changed.
func (s *orderService) CreateOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error) {
	ctx, span := tracer.Start(ctx, "order.Create")
	defer span.End()
	span.SetAttributes(attribute.Int("order.lines", len(in.Lines)))

	order, err := s.createOrder(ctx, in)
	if err != nil {
		ordersRejected.WithLabelValues(errorLabel(err)).Inc()
		recordSpanError(span, err)
		return entities.Order{}, err
	}

	ordersCreated.Inc()
	span.SetAttributes(attribute.String("order.id", order.ID))
	s.logger.Info("order created",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.String("total", order.Total().StringFixed(2)),
	)

	s.cacheOrder(order)
	s.publish(ctx, entities.NewOrderEvent(entities.EventOrderCreated, order, ""))
	return order, nil
}

func (s *orderService) createOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error) {
	if err := validateCreateOrder(in); err != nil {
		return entities.Order{}, err
	}

	// fail fast on unknown or inactive products before touching stock
	for _, l := range in.Lines {
		p, err := s.products.GetByID(ctx, l.ProductID)
		if err != nil {
			return entities.Order{}, err
		}
		if !p.Active {
			return entities.Order{}, entities.ProductUnavailable(p.Name)
		}
	}

	var order entities.Order
	err := utils.Retry(ctx, txRetry, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			order, err = s.placeOrder(ctx, in)
			return err
		})
	})
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

// placeOrder runs inside one transaction. Reservations made here are undone
// explicitly on failure, stores without transactions rely on that.
func (s *orderService) placeOrder(ctx context.Context, in entities.CreateOrderInput) (order entities.Order, err error) {
	reserved := make([]entities.OrderLineInput, 0, len(in.Lines))
	defer func() {
		if err != nil {
			s.compensate(ctx, reserved)
		}
	}()

	lines := make([]entities.OrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		if err := s.ledger.Reserve(ctx, l.ProductID, l.Quantity); err != nil {
			return entities.Order{}, err
		}
		reserved = append(reserved, l)

		// price, name and availability as seen by this transaction
		p, err := s.products.GetByID(ctx, l.ProductID)
		if err != nil {
			return entities.Order{}, err
		}
		if !p.Active {
			return entities.Order{}, entities.ProductUnavailable(p.Name)
		}
		lines = append(lines, entities.OrderLine{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    l.Quantity,
			UnitPrice:   p.Price,
		})
	}

	order, err = entities.NewOrder(in.CustomerName, in.CustomerEmail, lines, s.now())
	if err != nil {
		return entities.Order{}, err
	}

	for attempt := 1; ; attempt++ {
		err = s.orders.Create(ctx, order)
		if err == nil || !errors.Is(err, entities.ErrDuplicateResource) || attempt == orderNumberAttempts {
			break
		}
		s.logger.Warn("order number collision", slog.String("order_number", order.OrderNumber))
		order.OrderNumber = entities.NewOrderNumber()
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to persist order: %w", err)
	}

	return order, nil
}

// compensate gives back stock reserved by a failed attempt, newest first.
// Inside a database transaction the rollback does that instead.
func (s *orderService) compensate(ctx context.Context, reserved []entities.OrderLineInput) {
	if trm.ExtractTx(ctx) != nil {
		return
	}
	for i := len(reserved) - 1; i >= 0; i-- {
		l := reserved[i]
		if err := s.ledger.Release(ctx, l.ProductID, l.Quantity); err != nil {
			compensationFailures.Inc()
			s.logger.Error("failed to release reserved stock",
				slog.String("product_id", l.ProductID),
				slog.Int("quantity", l.Quantity),
				slog.Any("error", err),
			)
		}
	}
}

// CancelOrder moves the order to CANCELLED and returns every line to stock.
func (s *orderService) CancelOrder(ctx context.Context, id string) (entities.Order, error) {
	return s.cancel(ctx, id, entities.CheckCancellable)
}

// cancel runs a cancellation guarded by check, which sees the current status.
func (s *orderService) cancel(ctx context.Context, id string, check func(from entities.Status) error) (entities.Order, error) {
	ctx, span := tracer.Start(ctx, "order.Cancel")
	defer span.End()
	span.SetAttributes(attribute.String("order.id", id))

	var order entities.Order
	var previous entities.Status
	err := utils.Retry(ctx, txRetry, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			order, previous, err = s.cancelOrder(ctx, id, check)
			return err
		})
	})
	if err != nil {
		recordSpanError(span, err)
		return entities.Order{}, err
	}

	s.storeWritten(order)
	orderStatusChanges.WithLabelValues(entities.StatusCancelled.String()).Inc()
	s.logger.Info("order cancelled", slog.String("order_id", id), slog.String("previous_status", previous.String()))

	s.publish(ctx, entities.NewOrderEvent(entities.EventOrderCancelled, order, previous))
	return order, nil
}

func (s *orderService) cancelOrder(
	ctx context.Context,
	id string,
	check func(from entities.Status) error,
) (entities.Order, entities.Status, error) {
	order, err := s.orders.GetByIDForUpdate(ctx, id)
	if err != nil {
		return entities.Order{}, "", err
	}

	previous, err := s.writeStatus(ctx, order, entities.StatusCancelled, check)
	if err != nil {
		return entities.Order{}, "", err
	}

	released := make([]entities.OrderLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		if err := s.ledger.Release(ctx, l.ProductID, l.Quantity); err != nil {
			s.undoCancel(ctx, id, previous, released)
			return entities.Order{}, "", fmt.Errorf("failed to release stock for order %s: %w", id, err)
		}
		released = append(released, l)
	}

	order, err = s.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, "", err
	}
	return order, previous, nil
}

// undoCancel takes back the stock released so far and restores the status.
// Inside a database transaction the rollback does that instead.
func (s *orderService) undoCancel(ctx context.Context, id string, previous entities.Status, released []entities.OrderLine) {
	if trm.ExtractTx(ctx) != nil {
		return
	}
	for _, l := range released {
		if err := s.ledger.Reserve(ctx, l.ProductID, l.Quantity); err != nil {
			compensationFailures.Inc()
			s.logger.Error("failed to re-reserve stock",
				slog.String("order_id", id),
				slog.String("product_id", l.ProductID),
				slog.Any("error", err),
			)
		}
	}
	if _, err := s.orders.UpdateStatus(ctx, id, entities.StatusCancelled, previous); err != nil {
		compensationFailures.Inc()
		s.logger.Error("failed to restore order status", slog.String("order_id", id), slog.Any("error", err))
	}
}

// writeStatus checks and applies a transition with a conditional write. When
// another writer got there first the order is reloaded and checked again.
func (s *orderService) writeStatus(
	ctx context.Context,
	order entities.Order,
	to entities.Status,
	check func(from entities.Status) error,
) (entities.Status, error) {
	for attempt := 1; ; attempt++ {
		from := order.Status
		if err := check(from); err != nil {
			return "", err
		}

		ok, err := s.orders.UpdateStatus(ctx, order.ID, from, to)
		if err != nil {
			return "", err
		}
		if ok {
			return from, nil
		}
		if attempt == statusWriteAttempts {
			return "", &entities.StatusTransitionError{From: from, To: to}
		}

		if order, err = s.orders.GetByID(ctx, order.ID); err != nil {
			return "", err
		}
	}
}

// UpdateStatus applies a lifecycle transition. Cancellation takes the
// cancel path so stock always comes back, but is checked against the
// transition table like any other status.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status entities.Status) (entities.Order, error) {
	if status == entities.StatusCancelled {
		return s.cancel(ctx, id, func(from entities.Status) error {
			return entities.CheckTransition(from, entities.StatusCancelled)
		})
	}
	if !status.Valid() {
		return entities.Order{}, entities.InvalidArgument("unknown order status: %s", status)
	}

	ctx, span := tracer.Start(ctx, "order.UpdateStatus")
	defer span.End()
	span.SetAttributes(attribute.String("order.id", id), attribute.String("order.status", status.String()))

	var order entities.Order
	var previous entities.Status
	err := utils.Retry(ctx, txRetry, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			current, err := s.orders.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}

			previous, err = s.writeStatus(ctx, current, status, func(from entities.Status) error {
				return entities.CheckTransition(from, status)
			})
			if err != nil {
				return err
			}

			order, err = s.orders.GetByID(ctx, id)
			return err
		})
	})
	if err != nil {
		recordSpanError(span, err)
		return entities.Order{}, err
	}

	s.storeWritten(order)
	orderStatusChanges.WithLabelValues(status.String()).Inc()
	s.logger.Info("order status changed",
		slog.String("order_id", id),
		slog.String("from", previous.String()),
		slog.String("to", status.String()),
	)

	s.publish(ctx, entities.NewOrderEvent(entities.EventOrderStatusChanged, order, previous))
	return order, nil
}

// GetOrder reads through the cache. Concurrent misses for one id share a
// single repository call.
func (s *orderService) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	if data, ok := s.cache.Get(id); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			orderCacheLookups.WithLabelValues("hit").Inc()
			return order, nil
		}
		s.logger.Warn("dropping undecodable cache entry", slog.String("order_id", id))
		s.cache.Delete(id)
	}
	orderCacheLookups.WithLabelValues("miss").Inc()

	v, err, _ := s.group.Do(id, func() (any, error) {
		s.cacheMu.Lock()
		seen := s.writes
		s.cacheMu.Unlock()

		var order entities.Order
		fn := func(ctx context.Context) error {
			var err error
			order, err = s.orders.GetByID(ctx, id)
			return err
		}
		if err := utils.Retry(ctx, readRetry, fn, entities.ErrNotFound); err != nil {
			return entities.Order{}, err
		}

		s.cacheMu.Lock()
		defer s.cacheMu.Unlock()
		if s.writes == seen {
			s.cacheOrder(order)
		}
		return order, nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return v.(entities.Order), nil
}

// storeWritten caches an order right after a committed status change. Fills
// that started before it will not overwrite the entry.
func (s *orderService) storeWritten(order entities.Order) {
	s.group.Forget(order.ID)

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.writes++
	s.cacheOrder(order)
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}

func (s *orderService) GetOrderByNumber(ctx context.Context, number string) (entities.Order, error) {
	return s.orders.GetByNumber(ctx, number)
}

func (s *orderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.orders.List(ctx, entities.OrderFilter{})
}

func (s *orderService) ListByCustomerEmail(ctx context.Context, email string) ([]entities.Order, error) {
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, entities.InvalidArgument("customer email is not valid: %q", email)
	}
	return s.orders.List(ctx, entities.OrderFilter{CustomerEmail: email})
}

func (s *orderService) ListByStatus(ctx context.Context, status entities.Status) ([]entities.Order, error) {
	if !status.Valid() {
		return nil, entities.InvalidArgument("unknown order status: %s", status)
	}
	return s.orders.List(ctx, entities.OrderFilter{Status: status})
}

func (s *orderService) ListByDateRange(ctx context.Context, start, end time.Time) ([]entities.Order, error) {
	if start.After(end) {
		return nil, entities.InvalidArgument("start date %s is after end date %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return s.orders.List(ctx, entities.OrderFilter{CreatedFrom: &start, CreatedTo: &end})
}

func (s *orderService) CountByStatus(ctx context.Context, status entities.Status) (int, error) {
	if !status.Valid() {
		return 0, entities.InvalidArgument("unknown order status: %s", status)
	}
	counts, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return 0, err
	}
	return counts[status], nil
}

// CalculateOrderTotal sums the stored line totals.
func (s *orderService) CalculateOrderTotal(ctx context.Context, id string) (decimal.Decimal, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return order.Total(), nil
}

// WarmUpCache loads the latest orders into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	if count <= 0 {
		return nil
	}
	s.cacheMu.Lock()
	seen := s.writes
	s.cacheMu.Unlock()

	orders, err := s.orders.List(ctx, entities.OrderFilter{Limit: uint64(count)})
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.writes != seen {
		s.logger.Info("cache warm up skipped, orders changed meanwhile")
		return nil
	}
	for _, o := range orders {
		s.cacheOrder(o)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) publish(ctx context.Context, event entities.OrderEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("event_type", event.EventType),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

func errorLabel(err error) string {
	if code := entities.ErrorCode(err); code != "" {
		return code
	}
	return "INTERNAL"
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	if !entities.IsBusiness(err) {
		span.SetStatus(codes.Error, err.Error())
	}
}
