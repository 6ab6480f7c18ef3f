package category

import (
	"context"
	"inventory/domain"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListCategories(ctx context.Context, filter domain.CategoryFilter, page domain.PageRequest) ([]domain.Category, int64, error) {
	args := m.Called(ctx, filter, page)
	if res := args.Get(0); res != nil {
		return res.([]domain.Category), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockRepository) CreateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockRepository) UpdateCategory(ctx context.Context, category domain.Category) (bool, error) {
	args := m.Called(ctx, category)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) DeleteCategory(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
