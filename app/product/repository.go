package product

import (
	"context"
	"inventory/domain"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter, page domain.PageRequest) ([]domain.Product, int64, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) (bool, error)
	UpdateStock(ctx context.Context, id string, stockQty int, updatedAt time.Time) (bool, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)

	CountProducts(ctx context.Context) (int64, error)
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)
	LowStockProducts(ctx context.Context, threshold int) ([]domain.Product, error)
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
}

// CategoryFinder resolves the category a product points at.
type CategoryFinder interface {
	GetCategory(ctx context.Context, id string) (domain.Category, error)
}
