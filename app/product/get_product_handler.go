package product

import (
	"context"
	"errors"
	"inventory/domain"
	"inventory/pkg/httperror"

	"go.uber.org/zap"
)

type GetProductHandler struct {
	repository Repository
}

func NewGetProductHandler(repository Repository) *GetProductHandler {
	return &GetProductHandler{
		repository: repository,
	}
}

type GetProductRequest struct {
	ID string `params:"id" json:"-" query:"-" reqHeader:"-"`
}

type GetProductResponse = ProductResponse

func (h GetProductHandler) Handle(ctx context.Context, req *GetProductRequest) (*GetProductResponse, error) {
	product, err := h.repository.GetProduct(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, productNotFound("product.show")
		}

		zap.L().Error("Failed to get product", zap.String("productId", req.ID), zap.Error(err))
		return nil, httperror.InternalServerError(
			"product.show.failed",
			"Failed to retrieve product",
			nil,
		)
	}

	res := toProductResponse(product)
	return &res, nil
}
