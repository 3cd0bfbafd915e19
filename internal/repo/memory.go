package repo

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
)

type memProduct struct {
	mu sync.Mutex
	p  entities.Product
}

// MemoryStore keeps products and orders in process. Stock changes lock only
// the product they touch.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]*memProduct
	skus     map[string]string
	orders   map[string]entities.Order
	numbers  map[string]string
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[string]*memProduct),
		skus:     make(map[string]string),
		orders:   make(map[string]entities.Order),
		numbers:  make(map[string]string),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) Products() *memoryProductRepo {
	return &memoryProductRepo{s: s}
}

func (s *MemoryStore) Orders() *memoryOrderRepo {
	return &memoryOrderRepo{s: s}
}

type memoryProductRepo struct {
	s *MemoryStore
}

func (r *memoryProductRepo) Create(_ context.Context, p entities.Product) (entities.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.SKU != "" {
		if _, ok := r.s.skus[p.SKU]; ok {
			return entities.Product{}, entities.Duplicate("product", "SKU", p.SKU)
		}
		r.s.skus[p.SKU] = p.ID
	}

	now := r.s.now()
	p.CreatedAt, p.UpdatedAt = now, now
	r.s.products[p.ID] = &memProduct{p: p}
	return p, nil
}

func (r *memoryProductRepo) lookup(id string) (*memProduct, bool) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	mp, ok := r.s.products[id]
	return mp, ok
}

func (r *memoryProductRepo) GetByID(_ context.Context, id string) (entities.Product, error) {
	mp, ok := r.lookup(id)
	if !ok {
		return entities.Product{}, entities.NotFound("product", "id", id)
	}
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return mp.p, nil
}

func (r *memoryProductRepo) GetBySKU(ctx context.Context, sku string) (entities.Product, error) {
	r.s.mu.RLock()
	id, ok := r.s.skus[sku]
	r.s.mu.RUnlock()
	if !ok {
		return entities.Product{}, entities.NotFound("product", "SKU", sku)
	}
	return r.GetByID(ctx, id)
}

func (r *memoryProductRepo) ExistsBySKU(_ context.Context, sku, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	id, ok := r.s.skus[sku]
	return ok && id != excludeID, nil
}

func (r *memoryProductRepo) snapshot() []entities.Product {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]entities.Product, 0, len(r.s.products))
	for _, mp := range r.s.products {
		mp.mu.Lock()
		result = append(result, mp.p)
		mp.mu.Unlock()
	}
	return result
}

func (r *memoryProductRepo) List(_ context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	keyword := strings.ToLower(f.Keyword)

	result := slices.DeleteFunc(r.snapshot(), func(p entities.Product) bool {
		switch {
		case f.ActiveOnly && !p.Active:
			return true
		case f.Category != "" && p.Category != f.Category:
			return true
		case f.MinPrice != nil && p.Price.LessThan(*f.MinPrice):
			return true
		case f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice):
			return true
		case f.StockBelow != nil && p.StockQuantity >= *f.StockBelow:
			return true
		case keyword != "" &&
			!strings.Contains(strings.ToLower(p.Name), keyword) &&
			!strings.Contains(strings.ToLower(p.Description), keyword):
			return true
		}
		return false
	})

	slices.SortFunc(result, func(a, b entities.Product) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return result, nil
}

func (r *memoryProductRepo) Update(_ context.Context, p entities.Product) (entities.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	mp, ok := r.s.products[p.ID]
	if !ok {
		return entities.Product{}, entities.NotFound("product", "id", p.ID)
	}
	if p.SKU != "" {
		if owner, ok := r.s.skus[p.SKU]; ok && owner != p.ID {
			return entities.Product{}, entities.Duplicate("product", "SKU", p.SKU)
		}
	}

	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.p.SKU != "" {
		delete(r.s.skus, mp.p.SKU)
	}
	if p.SKU != "" {
		r.s.skus[p.SKU] = p.ID
	}

	mp.p.Name = p.Name
	mp.p.Description = p.Description
	mp.p.Price = p.Price
	mp.p.Category = p.Category
	mp.p.SKU = p.SKU
	mp.p.Active = p.Active
	mp.p.UpdatedAt = r.s.now()
	return mp.p, nil
}

func (r *memoryProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	mp, ok := r.s.products[id]
	if !ok {
		return entities.NotFound("product", "id", id)
	}
	for _, o := range r.s.orders {
		for _, l := range o.Lines {
			if l.ProductID == id {
				return entities.InvalidArgument("product %s is referenced by orders and can not be deleted", id)
			}
		}
	}

	if mp.p.SKU != "" {
		delete(r.s.skus, mp.p.SKU)
	}
	delete(r.s.products, id)
	return nil
}

func (r *memoryProductRepo) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range r.snapshot() {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	slices.Sort(categories)
	return categories, nil
}

func (r *memoryProductRepo) mutateStock(id string, apply func(p *entities.Product) bool) (bool, error) {
	mp, ok := r.lookup(id)
	if !ok {
		return false, nil
	}
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if !apply(&mp.p) {
		return false, nil
	}
	mp.p.UpdatedAt = r.s.now()
	return true, nil
}

func (r *memoryProductRepo) DecrementStock(_ context.Context, id string, quantity int) (bool, error) {
	return r.mutateStock(id, func(p *entities.Product) bool {
		if p.StockQuantity < quantity {
			return false
		}
		p.StockQuantity -= quantity
		return true
	})
}

func (r *memoryProductRepo) IncrementStock(_ context.Context, id string, quantity int) (bool, error) {
	return r.mutateStock(id, func(p *entities.Product) bool {
		p.StockQuantity += quantity
		return true
	})
}

func (r *memoryProductRepo) SetStock(_ context.Context, id string, quantity int) (bool, error) {
	return r.mutateStock(id, func(p *entities.Product) bool {
		p.StockQuantity = quantity
		return true
	})
}

type memoryOrderRepo struct {
	s *MemoryStore
}

func cloneOrder(o entities.Order) entities.Order {
	o.Lines = slices.Clone(o.Lines)
	return o
}

func (r *memoryOrderRepo) Create(_ context.Context, o entities.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.numbers[o.OrderNumber]; ok {
		return entities.Duplicate("order", "number", o.OrderNumber)
	}
	if _, ok := r.s.orders[o.ID]; ok {
		return entities.Duplicate("order", "id", o.ID)
	}

	r.s.orders[o.ID] = cloneOrder(o)
	r.s.numbers[o.OrderNumber] = o.ID
	return nil
}

func (r *memoryOrderRepo) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return entities.Order{}, entities.NotFound("order", "id", id)
	}
	return cloneOrder(o), nil
}

// GetByIDForUpdate has no lock to take here; UpdateStatus is conditional instead.
func (r *memoryOrderRepo) GetByIDForUpdate(ctx context.Context, id string) (entities.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *memoryOrderRepo) GetByNumber(ctx context.Context, number string) (entities.Order, error) {
	r.s.mu.RLock()
	id, ok := r.s.numbers[number]
	r.s.mu.RUnlock()
	if !ok {
		return entities.Order{}, entities.NotFound("order", "number", number)
	}
	return r.GetByID(ctx, id)
}

func (r *memoryOrderRepo) List(_ context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	r.s.mu.RLock()
	result := make([]entities.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		if f.CustomerEmail != "" && o.CustomerEmail != f.CustomerEmail {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.CreatedFrom != nil && o.CreatedAt.Before(*f.CreatedFrom) {
			continue
		}
		if f.CreatedTo != nil && o.CreatedAt.After(*f.CreatedTo) {
			continue
		}
		result = append(result, cloneOrder(o))
	}
	r.s.mu.RUnlock()

	slices.SortFunc(result, func(a, b entities.Order) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	if f.Limit > 0 && uint64(len(result)) > f.Limit {
		result = result[:f.Limit]
	}
	return result, nil
}

func (r *memoryOrderRepo) CountByStatus(_ context.Context) (map[entities.Status]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[entities.Status]int, len(entities.Statuses))
	for _, s := range entities.Statuses {
		counts[s] = 0
	}
	for _, o := range r.s.orders {
		counts[o.Status]++
	}
	return counts, nil
}

func (r *memoryOrderRepo) UpdateStatus(_ context.Context, id string, from, to entities.Status) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	o.UpdatedAt = r.s.now()
	r.s.orders[id] = o
	return true, nil
}
