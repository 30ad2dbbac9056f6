package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// Summary holds the dashboard headline numbers.
type Summary struct {
	ProductCount  int
	LowStockCount int
	// GrossSales sums every order that was not cancelled, delivered or not.
	GrossSales float64
}

// Summarize computes the dashboard headline numbers.
func Summarize(products []model.Product, orders []model.Order) Summary {
	s := Summary{ProductCount: len(products)}
	for _, p := range products {
		if p.LowStock() {
			s.LowStockCount++
		}
	}
	gross := decimal.Zero
	for _, o := range orders {
		if o.Status != model.OrderStatusCancelled {
			gross = gross.Add(decimal.NewFromFloat(o.Total))
		}
	}
	s.GrossSales = gross.InexactFloat64()
	return s
}
