package dto

import "time"

// ProductRequest carries editable product fields.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	CostPrice   float64 `json:"costPrice"`
	SellPrice   float64 `json:"sellPrice"`
	Stock       int     `json:"stock"`
	SKU         string  `json:"sku"`
	ImageURL    string  `json:"imageUrl"`
}

// ProductResponse describes a catalog item.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CostPrice   float64   `json:"costPrice"`
	SellPrice   float64   `json:"sellPrice"`
	Stock       int       `json:"stock"`
	LowStock    bool      `json:"lowStock"`
	SKU         string    `json:"sku"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PublicProductResponse is the storefront view of a catalog item.
type PublicProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	SellPrice   float64 `json:"sellPrice"`
	ImageURL    string  `json:"imageUrl"`
}

// AssistRequest names the product to describe.
type AssistRequest struct {
	Name string `json:"name"`
}

// AssistResponse is generated product copy.
type AssistResponse struct {
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	SKU         string `json:"sku,omitempty"`
}
