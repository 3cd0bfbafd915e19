package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("github.com/SergeyBogomolovv/fulfillment-service/internal/service")

type inventoryService struct {
	logger   *slog.Logger
	products ProductRepo
}

func NewInventoryService(logger *slog.Logger, products ProductRepo) *inventoryService {
	return &inventoryService{
		logger:   logger.With(slog.String("service", "inventory")),
		products: products,
	}
}

// CheckAvailability is advisory. Reserve is the only check that holds under
// concurrent orders.
func (s *inventoryService) CheckAvailability(ctx context.Context, productID string, quantity int) (bool, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return false, err
	}
	return p.HasStock(quantity), nil
}

// Reserve takes quantity units out of stock in one atomic step.
func (s *inventoryService) Reserve(ctx context.Context, productID string, quantity int) error {
	ctx, span := tracer.Start(ctx, "inventory.Reserve")
	defer span.End()
	span.SetAttributes(attribute.String("product.id", productID), attribute.Int("quantity", quantity))

	if quantity < 1 {
		return entities.InvalidQuantity(productID, quantity)
	}

	ok, err := s.products.DecrementStock(ctx, productID, quantity)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if ok {
		stockReserved.Add(float64(quantity))
		s.logger.Debug("stock reserved", slog.String("product_id", productID), slog.Int("quantity", quantity))
		return nil
	}

	// nothing was decremented: find out why
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	return &entities.InsufficientStockError{
		ProductID:   p.ID,
		ProductName: p.Name,
		Available:   p.StockQuantity,
		Requested:   quantity,
	}
}

func (s *inventoryService) Release(ctx context.Context, productID string, quantity int) error {
	ctx, span := tracer.Start(ctx, "inventory.Release")
	defer span.End()
	span.SetAttributes(attribute.String("product.id", productID), attribute.Int("quantity", quantity))

	if quantity < 1 {
		return entities.InvalidArgument("release quantity must be positive, got %d", quantity)
	}

	ok, err := s.products.IncrementStock(ctx, productID, quantity)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if !ok {
		return entities.NotFound("product", "id", productID)
	}

	stockReleased.Add(float64(quantity))
	s.logger.Debug("stock released", slog.String("product_id", productID), slog.Int("quantity", quantity))
	return nil
}

// SetAbsolute overwrites the stock level. Manual corrections only.
func (s *inventoryService) SetAbsolute(ctx context.Context, productID string, quantity int) (entities.Product, error) {
	if quantity < 0 {
		return entities.Product{}, entities.InvalidArgument("stock quantity can not be negative, got %d", quantity)
	}

	ok, err := s.products.SetStock(ctx, productID, quantity)
	if err != nil {
		return entities.Product{}, err
	}
	if !ok {
		return entities.Product{}, entities.NotFound("product", "id", productID)
	}

	s.logger.Info("stock set", slog.String("product_id", productID), slog.Int("quantity", quantity))
	return s.products.GetByID(ctx, productID)
}

func (s *inventoryService) AddStock(ctx context.Context, productID string, quantity int) (entities.Product, error) {
	if quantity < 1 {
		return entities.Product{}, entities.InvalidArgument("quantity to add must be positive, got %d", quantity)
	}
	if err := s.Release(ctx, productID, quantity); err != nil {
		return entities.Product{}, err
	}
	return s.products.GetByID(ctx, productID)
}

func (s *inventoryService) RemoveStock(ctx context.Context, productID string, quantity int) (entities.Product, error) {
	if quantity < 1 {
		return entities.Product{}, entities.InvalidArgument("quantity to remove must be positive, got %d", quantity)
	}
	if err := s.Reserve(ctx, productID, quantity); err != nil {
		return entities.Product{}, err
	}
	return s.products.GetByID(ctx, productID)
}

// ApplyAdjustment executes a stock command received from outside, such as a
// warehouse feed.
func (s *inventoryService) ApplyAdjustment(ctx context.Context, adj entities.StockAdjustment) error {
	var err error
	switch adj.Operation {
	case entities.AdjustmentAdd:
		_, err = s.AddStock(ctx, adj.ProductID, adj.Quantity)
	case entities.AdjustmentSet:
		_, err = s.SetAbsolute(ctx, adj.ProductID, adj.Quantity)
	default:
		err = entities.InvalidArgument("unknown stock operation: %s", adj.Operation)
	}
	if err != nil {
		return fmt.Errorf("failed to apply %s adjustment: %w", adj.Operation, err)
	}
	return nil
}
