package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultLowStockThreshold = 10

var (
	hundred        = decimal.NewFromInt(100)
	maxDiscountPct = hundred
)

type catalogService struct {
	logger   *slog.Logger
	products ProductRepo

	lowStockThreshold int
}

func NewCatalogService(logger *slog.Logger, products ProductRepo, lowStockThreshold int) *catalogService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return &catalogService{
		logger:            logger.With(slog.String("service", "catalog")),
		products:          products,
		lowStockThreshold: lowStockThreshold,
	}
}

func (s *catalogService) Create(ctx context.Context, in entities.ProductInput) (entities.Product, error) {
	if err := validateProductInput(in); err != nil {
		return entities.Product{}, err
	}

	if err := s.ensureSKUFree(ctx, in.SKU, ""); err != nil {
		return entities.Product{}, err
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	p, err := s.products.Create(ctx, entities.Product{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		Category:      strings.TrimSpace(in.Category),
		SKU:           strings.TrimSpace(in.SKU),
		Active:        active,
	})
	if err != nil {
		return entities.Product{}, err
	}

	s.logger.Info("product created", slog.String("product_id", p.ID), slog.String("sku", p.SKU))
	return p, nil
}

func (s *catalogService) ensureSKUFree(ctx context.Context, sku, excludeID string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil
	}
	exists, err := s.products.ExistsBySKU(ctx, sku, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return entities.Duplicate("product", "SKU", sku)
	}
	return nil
}

func (s *catalogService) Get(ctx context.Context, id string) (entities.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *catalogService) GetBySKU(ctx context.Context, sku string) (entities.Product, error) {
	return s.products.GetBySKU(ctx, sku)
}

func (s *catalogService) List(ctx context.Context) ([]entities.Product, error) {
	return s.products.List(ctx, entities.ProductFilter{})
}

func (s *catalogService) ListActive(ctx context.Context) ([]entities.Product, error) {
	return s.products.List(ctx, entities.ProductFilter{ActiveOnly: true})
}

// Update replaces the mutable fields. Stock is left as is.
func (s *catalogService) Update(ctx context.Context, id string, in entities.ProductInput) (entities.Product, error) {
	current, err := s.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}

	in.StockQuantity = current.StockQuantity
	if err := validateProductInput(in); err != nil {
		return entities.Product{}, err
	}
	if err := s.ensureSKUFree(ctx, in.SKU, id); err != nil {
		return entities.Product{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Description = in.Description
	current.Price = in.Price
	current.Category = strings.TrimSpace(in.Category)
	current.SKU = strings.TrimSpace(in.SKU)
	if in.Active != nil {
		current.Active = *in.Active
	}

	p, err := s.products.Update(ctx, current)
	if err != nil {
		return entities.Product{}, err
	}

	s.logger.Info("product updated", slog.String("product_id", id))
	return p, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product deleted", slog.String("product_id", id))
	return nil
}

func (s *catalogService) Activate(ctx context.Context, id string) (entities.Product, error) {
	return s.setActive(ctx, id, true)
}

func (s *catalogService) Deactivate(ctx context.Context, id string) (entities.Product, error) {
	return s.setActive(ctx, id, false)
}

func (s *catalogService) setActive(ctx context.Context, id string, active bool) (entities.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.Active == active {
		return p, nil
	}
	p.Active = active
	return s.products.Update(ctx, p)
}

func (s *catalogService) ByCategory(ctx context.Context, category string) ([]entities.Product, error) {
	return s.products.List(ctx, entities.ProductFilter{Category: category})
}

func (s *catalogService) ByPriceRange(ctx context.Context, lower, upper decimal.Decimal) ([]entities.Product, error) {
	if lower.IsNegative() || upper.IsNegative() {
		return nil, entities.InvalidArgument("price bounds can not be negative")
	}
	if lower.GreaterThan(upper) {
		return nil, entities.InvalidArgument("min price %s is greater than max price %s", lower, upper)
	}
	return s.products.List(ctx, entities.ProductFilter{MinPrice: &lower, MaxPrice: &upper})
}

// LowStock lists products with stock strictly below threshold. A threshold
// of zero or less means the configured default.
func (s *catalogService) LowStock(ctx context.Context, threshold int) ([]entities.Product, error) {
	if threshold <= 0 {
		threshold = s.lowStockThreshold
	}
	return s.products.List(ctx, entities.ProductFilter{StockBelow: &threshold})
}

func (s *catalogService) Search(ctx context.Context, keyword string) ([]entities.Product, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, entities.InvalidArgument("search keyword is required")
	}
	return s.products.List(ctx, entities.ProductFilter{Keyword: keyword})
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	return s.products.Categories(ctx)
}

// TotalStockValue sums price times stock over active products.
func (s *catalogService) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	products, err := s.ListActive(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.StockValue())
	}
	return total, nil
}

func (s *catalogService) DiscountedPrice(ctx context.Context, id string, percent decimal.Decimal) (decimal.Decimal, error) {
	if percent.IsNegative() || percent.GreaterThan(maxDiscountPct) {
		return decimal.Zero, entities.InvalidArgument("discount percent must be between 0 and 100, got %s", percent)
	}
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return ApplyDiscount(p.Price, percent), nil
}

// ApplyDiscount computes price * (1 - percent/100). The factor is rounded
// half-up to 4 places, the result half-up to cents.
func ApplyDiscount(price, percent decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(percent.Div(hundred)).Round(4)
	return price.Mul(factor).Round(2)
}
