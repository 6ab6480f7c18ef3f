package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"categoryId"`
	StockQty    int             `json:"stockQty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductFilter narrows a product listing. Both fields are optional and
// combine with AND.
type ProductFilter struct {
	Name       string
	CategoryID string
}

func NewProduct(name string, description *string, price decimal.Decimal, categoryID string, stockQty int, now time.Time) Product {
	now = now.UTC()
	return Product{
		ID:          NewID(),
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
		StockQty:    stockQty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
