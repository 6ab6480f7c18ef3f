package product

import (
	"context"
	"inventory/pkg/events"
	"inventory/pkg/httperror"
	"time"

	"go.uber.org/zap"
)

type DeleteProductHandler struct {
	repository     Repository
	eventPublisher events.Publisher
	cache          Cache
}

func NewDeleteProductHandler(repository Repository, eventPublisher events.Publisher, cache Cache) *DeleteProductHandler {
	return &DeleteProductHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
		cache:          cache,
	}
}

type DeleteProductRequest struct {
	ID string `params:"id" json:"-" query:"-" reqHeader:"-"`
}

type DeleteProductResponse = noContent

func (h DeleteProductHandler) Handle(ctx context.Context, req *DeleteProductRequest) (*DeleteProductResponse, error) {
	deleted, err := h.repository.DeleteProduct(ctx, req.ID)
	if err != nil {
		zap.L().Error("Failed to delete product", zap.String("productId", req.ID), zap.Error(err))
		return nil, httperror.InternalServerError(
			"product.destroy.failed",
			"Failed to delete product",
			nil,
		)
	}

	if !deleted {
		return nil, productNotFound("product.destroy")
	}

	invalidateDashboard(ctx, h.cache)
	events.Emit(ctx, h.eventPublisher, events.CatalogExchange, events.ProductDeletedEvent, events.ProductDeletedPayload{
		ID:        req.ID,
		DeletedAt: time.Now().UTC(),
	})

	return &DeleteProductResponse{}, nil
}
