package mongo

import (
	"fmt"
	"inventory/domain"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type categoryDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description *string   `bson:"description"`
	IsActive    bool      `bson:"isActive"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

type productDocument struct {
	ID          string               `bson:"_id"`
	Name        string               `bson:"name"`
	Description *string              `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	CategoryID  string               `bson:"categoryId"`
	StockQty    int                  `bson:"stockQty"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

// valuationDocument is the projection read when valuing the inventory.
type valuationDocument struct {
	Price    primitive.Decimal128 `bson:"price"`
	StockQty int                  `bson:"stockQty"`
}

type categoryCountDocument struct {
	CategoryID string `bson:"_id"`
	Count      int64  `bson:"count"`
}

func fromCategory(c domain.Category) categoryDocument {
	return categoryDocument{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (d categoryDocument) toDomain() domain.Category {
	return domain.Category{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func fromProduct(p domain.Product) (productDocument, error) {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return productDocument{}, err
	}

	return productDocument{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		CategoryID:  p.CategoryID,
		StockQty:    p.StockQty,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (d productDocument) toDomain() (domain.Product, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", d.ID, err)
	}

	return domain.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       price,
		CategoryID:  d.CategoryID,
		StockQty:    d.StockQty,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}, nil
}

func toProducts(docs []productDocument) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		p, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	dec, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("convert price %s: %w", d.String(), err)
	}
	return dec, nil
}

func fromDecimal128(d primitive.Decimal128) (decimal.Decimal, error) {
	dec, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("convert price %s: %w", d.String(), err)
	}
	return dec, nil
}
