package product

import (
	"context"
	"errors"
	"inventory/domain"
	"inventory/pkg/events"
	"inventory/pkg/httperror"
	"inventory/pkg/validation"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type UpdateProductHandler struct {
	repository     Repository
	categories     CategoryFinder
	eventPublisher events.Publisher
	cache          Cache
}

// UpdateProductRequest is decoded from the body first and the path last,
// so the path id wins over any id sent in the body. Query and header
// values never bind to it.
type UpdateProductRequest struct {
	ID          string          `json:"id" params:"id" query:"-" reqHeader:"-" validate:"required"`
	Name        string          `json:"name" query:"-" reqHeader:"-" validate:"required,notblank,min=2"`
	Description *string         `json:"description" query:"-" reqHeader:"-"`
	Price       decimal.Decimal `json:"price" query:"-" reqHeader:"-" validate:"gt=0"`
	CategoryID  string          `json:"categoryId" query:"-" reqHeader:"-" validate:"required,notblank"`
	StockQty    int             `json:"stockQty" query:"-" reqHeader:"-" validate:"gte=0"`
}

type UpdateProductResponse = noContent

func NewUpdateProductHandler(repository Repository, categories CategoryFinder, eventPublisher events.Publisher, cache Cache) *UpdateProductHandler {
	return &UpdateProductHandler{
		repository:     repository,
		categories:     categories,
		eventPublisher: eventPublisher,
		cache:          cache,
	}
}

func (h UpdateProductHandler) Handle(ctx context.Context, req *UpdateProductRequest) (*UpdateProductResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, validationError("product.update", err)
	}

	if err := ensureCategory(ctx, h.categories, "product.update", req.CategoryID); err != nil {
		return nil, err
	}

	product, err := h.repository.GetProduct(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, productNotFound("product.update")
		}

		zap.L().Error("Failed to get product", zap.String("productId", req.ID), zap.Error(err))
		return nil, httperror.InternalServerError(
			"product.update.failed",
			"Failed to get product",
			nil,
		)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.CategoryID = req.CategoryID
	product.StockQty = req.StockQty
	product.UpdatedAt = time.Now().UTC()

	updated, err := h.repository.UpdateProduct(ctx, product)
	if err != nil {
		zap.L().Error("Failed to update product", zap.String("productId", req.ID), zap.Error(err))
		return nil, httperror.InternalServerError(
			"product.update.update_failed",
			"An error occurred while updating the product",
			nil,
		)
	}

	if !updated {
		return nil, productNotFound("product.update")
	}

	invalidateDashboard(ctx, h.cache)
	events.Emit(ctx, h.eventPublisher, events.CatalogExchange, events.ProductUpdatedEvent, productPayload(product))

	return &UpdateProductResponse{}, nil
}
