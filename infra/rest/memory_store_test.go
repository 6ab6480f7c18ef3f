package rest

import (
	"context"
	"inventory/domain"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// memoryStore is an in-memory stand-in for the MongoDB repository.
type memoryStore struct {
	mu         sync.Mutex
	categories map[string]domain.Category
	products   map[string]domain.Product
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		categories: make(map[string]domain.Category),
		products:   make(map[string]domain.Product),
	}
}

func matchesName(name, filter string) bool {
	filter = strings.TrimSpace(filter)
	return filter == "" || strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

func window[T any](items []T, page domain.PageRequest) []T {
	if page.Empty() {
		return nil
	}
	start := min(int(page.Skip()), len(items))
	end := min(start+int(page.Limit()), len(items))
	return items[start:end]
}

func (s *memoryStore) sortedProducts() []domain.Product {
	products := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	slices.SortFunc(products, func(a, b domain.Product) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return products
}

func (s *memoryStore) ListCategories(_ context.Context, filter domain.CategoryFilter, page domain.PageRequest) ([]domain.Category, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain.Category
	for _, c := range s.categories {
		if matchesName(c.Name, filter.Name) {
			matched = append(matched, c)
		}
	}
	slices.SortFunc(matched, func(a, b domain.Category) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return window(matched, page), int64(len(matched)), nil
}

func (s *memoryStore) GetCategory(_ context.Context, id string) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return domain.Category{}, domain.ErrNotFound
	}
	return c, nil
}

func (s *memoryStore) CreateCategory(_ context.Context, category domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories[category.ID] = category
	return nil
}

func (s *memoryStore) UpdateCategory(_ context.Context, category domain.Category) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[category.ID]; !ok {
		return false, nil
	}
	s.categories[category.ID] = category
	return true, nil
}

func (s *memoryStore) DeleteCategory(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	delete(s.categories, id)
	return true, nil
}

func (s *memoryStore) ListProducts(_ context.Context, filter domain.ProductFilter, page domain.PageRequest) ([]domain.Product, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain.Product
	for _, p := range s.sortedProducts() {
		if !matchesName(p.Name, filter.Name) {
			continue
		}
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		matched = append(matched, p)
	}

	return window(matched, page), int64(len(matched)), nil
}

func (s *memoryStore) GetProduct(_ context.Context, id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (s *memoryStore) CreateProduct(_ context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[product.ID] = product
	return nil
}

func (s *memoryStore) UpdateProduct(_ context.Context, product domain.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return false, nil
	}
	s.products[product.ID] = product
	return true, nil
}

func (s *memoryStore) UpdateStock(_ context.Context, id string, stockQty int, updatedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return false, nil
	}
	p.StockQty = stockQty
	p.UpdatedAt = updatedAt
	s.products[id] = p
	return true, nil
}

func (s *memoryStore) DeleteProduct(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

func (s *memoryStore) CountProducts(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.products)), nil
}

func (s *memoryStore) TotalInventoryValue(_ context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.InventoryValue(s.sortedProducts()), nil
}

func (s *memoryStore) LowStockProducts(_ context.Context, threshold int) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var low []domain.Product
	for _, p := range s.sortedProducts() {
		if p.StockQty < threshold {
			low = append(low, p)
		}
	}
	return low, nil
}

func (s *memoryStore) CountByCategory(_ context.Context) ([]domain.CategoryCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int64)
	for _, p := range s.products {
		counts[p.CategoryID]++
	}

	out := make([]domain.CategoryCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, domain.CategoryCount{CategoryID: id, Count: n})
	}
	slices.SortFunc(out, func(a, b domain.CategoryCount) int {
		return strings.Compare(a.CategoryID, b.CategoryID)
	})
	return out, nil
}

func (s *memoryStore) Ping(context.Context) error {
	return nil
}
