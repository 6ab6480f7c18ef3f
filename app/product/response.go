package product

import (
	"inventory/domain"
	"inventory/pkg/events"
	"net/http"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"categoryId"`
	StockQty    int             `json:"stockQty"`
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		StockQty:    p.StockQty,
	}
}

func toProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func productPayload(p domain.Product) events.ProductPayload {
	return events.ProductPayload{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		StockQty:    p.StockQty,
		UpdatedAt:   p.UpdatedAt,
	}
}

type noContent struct{}

func (noContent) StatusCode() int {
	return http.StatusNoContent
}
