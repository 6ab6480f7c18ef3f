package category

import (
	"context"
	"inventory/domain"
	"inventory/pkg/httperror"

	"go.uber.org/zap"
)

type ListCategoriesHandler struct {
	repository Repository
}

func NewListCategoriesHandler(repository Repository) *ListCategoriesHandler {
	return &ListCategoriesHandler{
		repository: repository,
	}
}

type ListCategoriesRequest struct {
	Page     int    `query:"page" json:"-" reqHeader:"-"`
	PageSize int    `query:"pageSize" json:"-" reqHeader:"-"`
	Name     string `query:"name" json:"-" reqHeader:"-"`
}

// SetDefaults fills the values used when the query string omits them.
func (r *ListCategoriesRequest) SetDefaults() {
	r.Page = domain.DefaultPage
	r.PageSize = domain.DefaultPageSize
}

type ListCategoriesResponse = domain.PagedResult[CategoryResponse]

func (h ListCategoriesHandler) Handle(ctx context.Context, req *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	page := domain.NewPageRequest(req.Page, req.PageSize)

	categories, total, err := h.repository.ListCategories(ctx, domain.CategoryFilter{Name: req.Name}, page)
	if err != nil {
		zap.L().Error("Failed to list categories", zap.Error(err))
		return nil, httperror.InternalServerError(
			"category.index.failed",
			"Failed to retrieve categories",
			nil,
		)
	}

	res := domain.NewPagedResult(toCategoryResponses(categories), page, total)
	return &res, nil
}
