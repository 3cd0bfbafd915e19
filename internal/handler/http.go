package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"

	"github.com/shopspring/decimal"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error)
	CancelOrder(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.Status) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.Status) ([]entities.Order, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]entities.Order, error)
	CountByStatus(ctx context.Context, status entities.Status) (int, error)
	CalculateOrderTotal(ctx context.Context, id string) (decimal.Decimal, error)
}

type CatalogService interface {
	Create(ctx context.Context, in entities.ProductInput) (entities.Product, error)
	Get(ctx context.Context, id string) (entities.Product, error)
	GetBySKU(ctx context.Context, sku string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	ListActive(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, id string, in entities.ProductInput) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) (entities.Product, error)
	Deactivate(ctx context.Context, id string) (entities.Product, error)
	ByCategory(ctx context.Context, category string) ([]entities.Product, error)
	ByPriceRange(ctx context.Context, lower, upper decimal.Decimal) ([]entities.Product, error)
	LowStock(ctx context.Context, threshold int) ([]entities.Product, error)
	Search(ctx context.Context, keyword string) ([]entities.Product, error)
	Categories(ctx context.Context) ([]string, error)
	TotalStockValue(ctx context.Context) (decimal.Decimal, error)
	DiscountedPrice(ctx context.Context, id string, percent decimal.Decimal) (decimal.Decimal, error)
}

type InventoryService interface {
	CheckAvailability(ctx context.Context, productID string, quantity int) (bool, error)
	SetAbsolute(ctx context.Context, productID string, quantity int) (entities.Product, error)
	AddStock(ctx context.Context, productID string, quantity int) (entities.Product, error)
	RemoveStock(ctx context.Context, productID string, quantity int) (entities.Product, error)
}

// queryInt reads a required integer query parameter. It writes the 400
// response itself and reports false when the value is missing or malformed.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		utils.WriteCodedError(w, "query parameter "+name+" must be an integer", entities.CodeInvalidArgument, http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

// queryIntDefault is queryInt for optional parameters.
func queryIntDefault(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	if r.URL.Query().Get(name) == "" {
		return def, true
	}
	return queryInt(w, r, name)
}

func queryDecimal(w http.ResponseWriter, r *http.Request, name string) (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(r.URL.Query().Get(name))
	if err != nil {
		utils.WriteCodedError(w, "query parameter "+name+" must be a decimal number", entities.CodeInvalidArgument, http.StatusBadRequest)
		return decimal.Zero, false
	}
	return v, true
}

func queryTime(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	v, err := time.Parse(time.RFC3339, r.URL.Query().Get(name))
	if err != nil {
		utils.WriteCodedError(w, "query parameter "+name+" must be an RFC3339 timestamp", entities.CodeInvalidArgument, http.StatusBadRequest)
		return time.Time{}, false
	}
	return v, true
}
