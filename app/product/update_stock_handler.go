package product

import (
	"context"
	"inventory/domain"
	"inventory/pkg/events"
	"inventory/pkg/httperror"
	"inventory/pkg/validation"
	"time"

	"go.uber.org/zap"
)

type UpdateStockHandler struct {
	repository     Repository
	eventPublisher events.Publisher
	cache          Cache
}

type UpdateStockRequest struct {
	ID       string `params:"id" json:"-" query:"-" reqHeader:"-" validate:"required"`
	StockQty *int   `json:"stockQty" query:"-" reqHeader:"-" validate:"required,gte=0"`
}

type UpdateStockResponse = noContent

func NewUpdateStockHandler(repository Repository, eventPublisher events.Publisher, cache Cache) *UpdateStockHandler {
	return &UpdateStockHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
		cache:          cache,
	}
}

// Handle sets the stock level of a product, leaving every other field as is.
func (h UpdateStockHandler) Handle(ctx context.Context, req *UpdateStockRequest) (*UpdateStockResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, validationError("product.stock", err)
	}

	now := time.Now().UTC()

	updated, err := h.repository.UpdateStock(ctx, req.ID, *req.StockQty, now)
	if err != nil {
		zap.L().Error("Failed to update stock", zap.String("productId", req.ID), zap.Error(err))
		return nil, httperror.InternalServerError(
			"product.stock.update_failed",
			"An error occurred while updating the stock",
			nil,
		)
	}

	if !updated {
		return nil, productNotFound("product.stock")
	}

	if domain.IsLowStock(*req.StockQty) {
		zap.L().Info("Product is low on stock", zap.String("productId", req.ID), zap.Int("stockQty", *req.StockQty))
	}

	invalidateDashboard(ctx, h.cache)
	events.Emit(ctx, h.eventPublisher, events.CatalogExchange, events.ProductStockUpdatedEvent, events.ProductStockUpdatedPayload{
		ID:        req.ID,
		StockQty:  *req.StockQty,
		UpdatedAt: now,
	})

	return &UpdateStockResponse{}, nil
}
