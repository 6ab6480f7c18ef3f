package product

import (
	"context"
	"inventory/domain"
	"inventory/pkg/events"
	"inventory/pkg/httperror"
	"inventory/pkg/validation"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreateProductHandler struct {
	repository     Repository
	categories     CategoryFinder
	eventPublisher events.Publisher
	cache          Cache
}

type CreateProductRequest struct {
	Name        string          `json:"name" query:"-" reqHeader:"-" validate:"required,notblank,min=2"`
	Description *string         `json:"description" query:"-" reqHeader:"-"`
	Price       decimal.Decimal `json:"price" query:"-" reqHeader:"-" validate:"gt=0"`
	CategoryID  string          `json:"categoryId" query:"-" reqHeader:"-" validate:"required,notblank"`
	StockQty    int             `json:"stockQty" query:"-" reqHeader:"-" validate:"gte=0"`
}

type CreateProductResponse struct {
	ID string `json:"id"`
}

func NewCreateProductHandler(repository Repository, categories CategoryFinder, eventPublisher events.Publisher, cache Cache) *CreateProductHandler {
	return &CreateProductHandler{
		repository:     repository,
		categories:     categories,
		eventPublisher: eventPublisher,
		cache:          cache,
	}
}

func (h CreateProductHandler) Handle(ctx context.Context, req *CreateProductRequest) (*CreateProductResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, validationError("product.create", err)
	}

	if err := ensureCategory(ctx, h.categories, "product.create", req.CategoryID); err != nil {
		return nil, err
	}

	product := domain.NewProduct(req.Name, req.Description, req.Price, req.CategoryID, req.StockQty, time.Now())

	if err := h.repository.CreateProduct(ctx, product); err != nil {
		zap.L().Error("Failed to create product", zap.Error(err))
		return nil, httperror.InternalServerError(
			"product.create.create_failed",
			"An error occurred while creating the product",
			nil,
		)
	}

	invalidateDashboard(ctx, h.cache)
	events.Emit(ctx, h.eventPublisher, events.CatalogExchange, events.ProductCreatedEvent, productPayload(product))

	return &CreateProductResponse{ID: product.ID}, nil
}
