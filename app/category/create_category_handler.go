package category

import (
	"context"
	"errors"
	"inventory/domain"
	"inventory/pkg/events"
	"inventory/pkg/httperror"
	"inventory/pkg/validation"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type CreateCategoryHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" query:"-" reqHeader:"-" validate:"required,notblank,max=120"`
	Description *string `json:"description" query:"-" reqHeader:"-"`
}

type CreateCategoryResponse struct {
	ID string `json:"id"`
}

func (CreateCategoryResponse) StatusCode() int {
	return http.StatusCreated
}

func NewCreateCategoryHandler(repository Repository, eventPublisher events.Publisher) *CreateCategoryHandler {
	return &CreateCategoryHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h CreateCategoryHandler) Handle(ctx context.Context, req *CreateCategoryRequest) (*CreateCategoryResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, validationError("category.create", err)
	}

	category := domain.NewCategory(req.Name, req.Description, time.Now())

	if err := h.repository.CreateCategory(ctx, category); err != nil {
		zap.L().Error("Failed to create category", zap.Error(err))
		return nil, httperror.InternalServerError(
			"category.create.create_failed",
			"An error occurred while creating the category",
			nil,
		)
	}

	events.Emit(ctx, h.eventPublisher, events.CatalogExchange, events.CategoryCreatedEvent, categoryPayload(category))

	return &CreateCategoryResponse{ID: category.ID}, nil
}

func categoryPayload(c domain.Category) events.CategoryPayload {
	return events.CategoryPayload{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		UpdatedAt:   c.UpdatedAt,
	}
}

// validationError turns a validation.Struct failure into the client error
// returned by every write handler. op prefixes the error code.
func validationError(op string, err error) error {
	var fields validation.Errors
	if errors.As(err, &fields) {
		return httperror.BadRequest(
			op+".validation_failed",
			"Validation failed for the request",
			fields,
		)
	}

	return httperror.InternalServerError(
		op+".validation_error",
		"An unexpected validation error occurred",
		nil,
	)
}
