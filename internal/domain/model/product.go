package model

import "time"

// LowStockThreshold marks products that should be restocked. Stock is informational only.
const LowStockThreshold = 10

// Product is a sellable catalog item.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	CostPrice   float64
	SellPrice   float64
	Stock       int
	SKU         string
	ImageURL    string
	CreatedAt   time.Time
}

// LowStock reports whether the product is under the restock threshold.
func (p Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}

// ProductInput carries editable product fields.
type ProductInput struct {
	Name        string
	Description string
	Category    string
	CostPrice   float64
	SellPrice   float64
	Stock       int
	SKU         string
	ImageURL    string
}

// ProductSuggestion is generated copy for the product form.
type ProductSuggestion struct {
	Description string
	Category    string
	SKU         string
}
