package mongo

import (
	"context"
	"inventory/domain"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *Repository) ListProducts(ctx context.Context, filter domain.ProductFilter, page domain.PageRequest) ([]domain.Product, int64, error) {
	var docs []productDocument
	total, err := findPage(ctx, r.products, productFilter(filter), page, &docs)
	if err != nil {
		return nil, 0, err
	}

	products, err := toProducts(docs)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *Repository) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var doc productDocument
	err := r.products.FindOne(ctx, byID(id)).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, err
	}
	return doc.toDomain()
}

func (r *Repository) CreateProduct(ctx context.Context, product domain.Product) error {
	doc, err := fromProduct(product)
	if err != nil {
		return err
	}

	_, err = r.products.InsertOne(ctx, doc)
	return err
}

func (r *Repository) UpdateProduct(ctx context.Context, product domain.Product) (bool, error) {
	doc, err := fromProduct(product)
	if err != nil {
		return false, err
	}

	res, err := r.products.ReplaceOne(ctx, byID(product.ID), doc)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *Repository) UpdateStock(ctx context.Context, id string, stockQty int, updatedAt time.Time) (bool, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "stockQty", Value: stockQty},
		{Key: "updatedAt", Value: updatedAt},
	}}}

	res, err := r.products.UpdateOne(ctx, byID(id), update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id string) (bool, error) {
	res, err := r.products.DeleteOne(ctx, byID(id))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
