package category

import (
	"context"
	"errors"
	"inventory/domain"
	"inventory/pkg/httperror"

	"go.uber.org/zap"
)

type GetCategoryHandler struct {
	repository Repository
}

func NewGetCategoryHandler(repository Repository) *GetCategoryHandler {
	return &GetCategoryHandler{
		repository: repository,
	}
}

type GetCategoryRequest struct {
	ID string `params:"id" json:"-" query:"-" reqHeader:"-"`
}

type GetCategoryResponse = CategoryResponse

func (h GetCategoryHandler) Handle(ctx context.Context, req *GetCategoryRequest) (*GetCategoryResponse, error) {
	category, err := h.repository.GetCategory(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperror.NotFound(
				"category.show.not_found",
				"Category not found",
				nil,
			)
		}

		zap.L().Error("Failed to get category", zap.String("categoryId", req.ID), zap.Error(err))
		return nil, httperror.InternalServerError(
			"category.show.failed",
			"Failed to retrieve category",
			nil,
		)
	}

	res := toCategoryResponse(category)
	return &res, nil
}
