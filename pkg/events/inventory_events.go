package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies this service in event headers.
const Source = "inventory"

const (
	CatalogExchange = "inventory.catalog"
	StockExchange   = "inventory.stock"
)

const (
	CategoryCreatedEvent = "category.created"
	CategoryUpdatedEvent = "category.updated"
	CategoryDeletedEvent = "category.deleted"

	ProductCreatedEvent      = "product.created"
	ProductUpdatedEvent      = "product.updated"
	ProductDeletedEvent      = "product.deleted"
	ProductStockUpdatedEvent = "product.stock_updated"

	// Consumed by the worker.
	StockAdjustedEvent = "stock.adjusted"
)

const (
	EventVersionV1 = "v1"
)

type CategoryPayload struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CategoryDeletedPayload struct {
	ID        string    `json:"id"`
	DeletedAt time.Time `json:"deletedAt"`
}

type ProductPayload struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"categoryId"`
	StockQty    int             `json:"stockQty"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ProductDeletedPayload struct {
	ID        string    `json:"id"`
	DeletedAt time.Time `json:"deletedAt"`
}

type ProductStockUpdatedPayload struct {
	ID        string    `json:"id"`
	StockQty  int       `json:"stockQty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type StockAdjustedPayload struct {
	ProductID string `json:"productId"`
	StockQty  *int   `json:"stockQty"`
}
