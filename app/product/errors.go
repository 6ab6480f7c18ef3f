package product

import (
	"context"
	"errors"
	"inventory/domain"
	"inventory/pkg/httperror"
	"inventory/pkg/validation"

	"go.uber.org/zap"
)

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

func productNotFound(op string) error {
	return httperror.NotFound(
		op+".not_found",
		"Product not found",
		nil,
	)
}

// ensureCategory fails with a referential integrity error when categoryID
// does not resolve. The check and the following write are not atomic.
func ensureCategory(ctx context.Context, categories CategoryFinder, op, categoryID string) error {
	_, err := categories.GetCategory(ctx, categoryID)
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrNotFound) {
		return httperror.UnprocessableEntity(
			op+".category_not_found",
			"Category not found",
			map[string]string{"categoryId": categoryID},
		).WithCause(domain.ErrCategoryNotFound)
	}

	zap.L().Error("Failed to get category", zap.String("categoryId", categoryID), zap.Error(err))
	return httperror.InternalServerError(
		op+".category_lookup_failed",
		"Failed to verify category",
		nil,
	)
}
