package product

import (
	"context"
	"inventory/domain"
	"inventory/pkg/httperror"

	"go.uber.org/zap"
)

type ListProductsHandler struct {
	repository Repository
}

func NewListProductsHandler(repository Repository) *ListProductsHandler {
	return &ListProductsHandler{
		repository: repository,
	}
}

type ListProductsRequest struct {
	Page       int    `query:"page" json:"-" reqHeader:"-"`
	PageSize   int    `query:"pageSize" json:"-" reqHeader:"-"`
	Name       string `query:"name" json:"-" reqHeader:"-"`
	CategoryID string `query:"categoryId" json:"-" reqHeader:"-"`
}

func (r *ListProductsRequest) SetDefaults() {
	r.Page = domain.DefaultPage
	r.PageSize = domain.DefaultPageSize
}

type ListProductsResponse = domain.PagedResult[ProductResponse]

func (h ListProductsHandler) Handle(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	page := domain.NewPageRequest(req.Page, req.PageSize)
	filter := domain.ProductFilter{
		Name:       req.Name,
		CategoryID: req.CategoryID,
	}

	products, total, err := h.repository.ListProducts(ctx, filter, page)
	if err != nil {
		zap.L().Error("Failed to list products", zap.Error(err))
		return nil, httperror.InternalServerError(
			"product.index.failed",
			"Failed to retrieve products",
			nil,
		)
	}

	res := domain.NewPagedResult(toProductResponses(products), page, total)
	return &res, nil
}
