package mongo

import (
	"context"
	"inventory/domain"
)

func (r *Repository) ListCategories(ctx context.Context, filter domain.CategoryFilter, page domain.PageRequest) ([]domain.Category, int64, error) {
	var docs []categoryDocument
	total, err := findPage(ctx, r.categories, categoryFilter(filter), page, &docs)
	if err != nil {
		return nil, 0, err
	}

	categories := make([]domain.Category, 0, len(docs))
	for _, d := range docs {
		categories = append(categories, d.toDomain())
	}
	return categories, total, nil
}

func (r *Repository) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	var doc categoryDocument
	err := r.categories.FindOne(ctx, byID(id)).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return domain.Category{}, domain.ErrNotFound
		}
		return domain.Category{}, err
	}
	return doc.toDomain(), nil
}

func (r *Repository) CreateCategory(ctx context.Context, category domain.Category) error {
	_, err := r.categories.InsertOne(ctx, fromCategory(category))
	return err
}

// UpdateCategory replaces the stored document and reports whether it still
// existed.
func (r *Repository) UpdateCategory(ctx context.Context, category domain.Category) (bool, error) {
	res, err := r.categories.ReplaceOne(ctx, byID(category.ID), fromCategory(category))
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id string) (bool, error) {
	res, err := r.categories.DeleteOne(ctx, byID(id))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
