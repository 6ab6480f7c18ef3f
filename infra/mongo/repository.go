package mongo

import (
	"context"
	"errors"
	"fmt"
	"inventory/domain"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	categoriesCollection = "categories"
	productsCollection   = "products"
)

type Repository struct {
	client     *mongo.Client
	categories *mongo.Collection
	products   *mongo.Collection
}

// NewRepository connects to uri, pings the server and makes sure the
// collection indexes exist. timeout bounds the whole startup sequence.
func NewRepository(ctx context.Context, uri, database string, timeout time.Duration) (*Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(database)
	r := &Repository{
		client:     client,
		categories: db.Collection(categoriesCollection),
		products:   db.Collection(productsCollection),
	}

	if err := r.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	zap.L().Info("Connected to MongoDB", zap.String("database", database))
	return r, nil
}

func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func (r *Repository) ensureIndexes(ctx context.Context) error {
	_, err := r.categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create category indexes: %w", err)
	}

	_, err = r.products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "categoryId", Value: 1}, {Key: "stockQty", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create product indexes: %w", err)
	}

	return nil
}

// findPage counts the documents matching filter and decodes the requested
// window into out. An empty window skips the read, since a zero limit means
// no limit to the server.
func findPage(ctx context.Context, coll *mongo.Collection, filter bson.D, page domain.PageRequest, out any) (int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	if page.Empty() {
		return total, nil
	}

	opts := options.Find().
		SetSort(stableSort).
		SetSkip(page.Skip()).
		SetLimit(page.Limit())

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return 0, err
	}

	return total, nil
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
