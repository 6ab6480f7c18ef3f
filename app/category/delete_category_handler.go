package category

import (
	"context"
	"inventory/pkg/events"
	"inventory/pkg/httperror"
	"time"

	"go.uber.org/zap"
)

type DeleteCategoryHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewDeleteCategoryHandler(repository Repository, eventPublisher events.Publisher) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type DeleteCategoryRequest struct {
	ID string `params:"id" json:"-" query:"-" reqHeader:"-"`
}

type DeleteCategoryResponse = noContent

// Handle removes the category without touching products that still
// reference it.
func (h DeleteCategoryHandler) Handle(ctx context.Context, req *DeleteCategoryRequest) (*DeleteCategoryResponse, error) {
	deleted, err := h.repository.DeleteCategory(ctx, req.ID)
	if err != nil {
		zap.L().Error("Failed to delete category", zap.String("categoryId", req.ID), zap.Error(err))
		return nil, httperror.InternalServerError(
			"category.destroy.failed",
			"Failed to delete category",
			nil,
		)
	}

	if !deleted {
		return nil, categoryNotFound("category.destroy")
	}

	events.Emit(ctx, h.eventPublisher, events.CatalogExchange, events.CategoryDeletedEvent, events.CategoryDeletedPayload{
		ID:        req.ID,
		DeletedAt: time.Now().UTC(),
	})

	return &DeleteCategoryResponse{}, nil
}
