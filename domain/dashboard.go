package domain

import "github.com/shopspring/decimal"

// LowStockThreshold is the stock level below which a product is reported as
// low on stock.
const LowStockThreshold = 10

func IsLowStock(stockQty int) bool {
	return stockQty < LowStockThreshold
}

// LineValue is price × stockQty for a single product.
func LineValue(price decimal.Decimal, stockQty int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(stockQty)))
}

// Valuation accumulates the inventory value of a stream of products.
// The zero value is ready to use.
type Valuation struct {
	total decimal.Decimal
}

func (v *Valuation) Add(price decimal.Decimal, stockQty int) {
	v.total = v.total.Add(LineValue(price, stockQty))
}

func (v *Valuation) Total() decimal.Decimal {
	return v.total
}

func InventoryValue(products []Product) decimal.Decimal {
	var v Valuation
	for _, p := range products {
		v.Add(p.Price, p.StockQty)
	}
	return v.Total()
}

type CategoryCount struct {
	CategoryID string `json:"categoryId"`
	Count      int64  `json:"count"`
}
