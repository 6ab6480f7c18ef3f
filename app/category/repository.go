package category

import (
	"context"
	"inventory/domain"
)

type Repository interface {
	ListCategories(ctx context.Context, filter domain.CategoryFilter, page domain.PageRequest) ([]domain.Category, int64, error)
	GetCategory(ctx context.Context, id string) (domain.Category, error)
	CreateCategory(ctx context.Context, category domain.Category) error
	// UpdateCategory replaces the stored category and reports whether it
	// still existed.
	UpdateCategory(ctx context.Context, category domain.Category) (bool, error)
	// DeleteCategory reports whether a document was removed. Products that
	// reference the category are left untouched.
	DeleteCategory(ctx context.Context, id string) (bool, error)
}
