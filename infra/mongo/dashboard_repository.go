package mongo

import (
	"context"
	"inventory/domain"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *Repository) CountProducts(ctx context.Context) (int64, error) {
	return r.products.CountDocuments(ctx, bson.D{})
}

// TotalInventoryValue streams price and stockQty of every product and sums
// price*stockQty without leaving decimal arithmetic.
func (r *Repository) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	opts := options.Find().SetProjection(bson.D{
		{Key: "_id", Value: 0},
		{Key: "price", Value: 1},
		{Key: "stockQty", Value: 1},
	})

	cursor, err := r.products.Find(ctx, bson.D{}, opts)
	if err != nil {
		return decimal.Zero, err
	}
	defer cursor.Close(ctx)

	var valuation domain.Valuation
	for cursor.Next(ctx) {
		var doc valuationDocument
		if err := cursor.Decode(&doc); err != nil {
			return decimal.Zero, err
		}

		price, err := fromDecimal128(doc.Price)
		if err != nil {
			return decimal.Zero, err
		}
		valuation.Add(price, doc.StockQty)
	}

	if err := cursor.Err(); err != nil {
		return decimal.Zero, err
	}

	return valuation.Total(), nil
}

func (r *Repository) LowStockProducts(ctx context.Context, threshold int) ([]domain.Product, error) {
	filter := bson.D{{Key: "stockQty", Value: bson.D{{Key: "$lt", Value: threshold}}}}

	cursor, err := r.products.Find(ctx, filter, options.Find().SetSort(stableSort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return toProducts(docs)
}

// CountByCategory returns one entry per categoryId present, ordered by id.
// Categories without products do not appear.
func (r *Repository) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	pipeline := countByCategoryPipeline()

	cursor, err := r.products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []categoryCountDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	counts := make([]domain.CategoryCount, 0, len(docs))
	for _, d := range docs {
		counts = append(counts, domain.CategoryCount{CategoryID: d.CategoryID, Count: d.Count})
	}
	return counts, nil
}

func countByCategoryPipeline() bson.A {
	return bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$categoryId"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
