package category

import (
	"context"
	"errors"
	"inventory/domain"
	"inventory/pkg/events"
	"inventory/pkg/httperror"
	"inventory/pkg/validation"
	"time"

	"go.uber.org/zap"
)

type UpdateCategoryHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

type UpdateCategoryRequest struct {
	ID          string  `params:"id" json:"-" query:"-" reqHeader:"-" validate:"required"`
	Name        string  `json:"name" query:"-" reqHeader:"-" validate:"required,notblank,max=120"`
	Description *string `json:"description" query:"-" reqHeader:"-"`
}

type UpdateCategoryResponse = noContent

func NewUpdateCategoryHandler(repository Repository, eventPublisher events.Publisher) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h UpdateCategoryHandler) Handle(ctx context.Context, req *UpdateCategoryRequest) (*UpdateCategoryResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, validationError("category.update", err)
	}

	category, err := h.repository.GetCategory(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, categoryNotFound("category.update")
		}

		zap.L().Error("Failed to get category", zap.String("categoryId", req.ID), zap.Error(err))
		return nil, httperror.InternalServerError(
			"category.update.failed",
			"Failed to get category",
			nil,
		)
	}

	category.Name = req.Name
	category.Description = req.Description
	category.UpdatedAt = time.Now().UTC()

	updated, err := h.repository.UpdateCategory(ctx, category)
	if err != nil {
		zap.L().Error("Failed to update category", zap.String("categoryId", req.ID), zap.Error(err))
		return nil, httperror.InternalServerError(
			"category.update.update_failed",
			"An error occurred while updating the category",
			nil,
		)
	}

	// Removed between the lookup and the write.
	if !updated {
		return nil, categoryNotFound("category.update")
	}

	events.Emit(ctx, h.eventPublisher, events.CatalogExchange, events.CategoryUpdatedEvent, categoryPayload(category))

	return &UpdateCategoryResponse{}, nil
}

func categoryNotFound(op string) error {
	return httperror.NotFound(
		op+".not_found",
		"Category not found",
		nil,
	)
}
