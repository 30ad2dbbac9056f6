// Package cart holds the customer's product selection until checkout.
package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// MaxQuantity caps the units of a single product in one cart.
const MaxQuantity = 999

// ErrInvalidQuantity is returned for a quantity outside 1..MaxQuantity.
var ErrInvalidQuantity = errors.New("invalid quantity")

// Item pairs a product with a positive quantity.
type Item struct {
	Product  model.Product
	Quantity int
}

// Subtotal returns price times quantity.
func (i Item) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Product.SellPrice).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is a quantity-keyed selection of catalog items. It is never persisted.
type Cart struct {
	items []Item
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the product into the cart.
func (c *Cart) Add(p model.Product, open bool) error {
	return c.Put(p, 1, open)
}

// Put adds qty units of the product. Additions are rejected while the store is closed
// and when the merged line would exceed MaxQuantity.
func (c *Cart) Put(p model.Product, qty int, open bool) error {
	if !open {
		return domainErrors.ErrStoreClosed
	}
	if qty <= 0 || qty > MaxQuantity {
		return ErrInvalidQuantity
	}
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			// both operands are within 1..MaxQuantity, so the sum cannot overflow
			if c.items[i].Quantity+qty > MaxQuantity {
				return ErrInvalidQuantity
			}
			c.items[i].Quantity += qty
			return nil
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: qty})
	return nil
}

// SetQuantity overrides the quantity of a product already in the cart; qty <= 0 removes it.
func (c *Cart) SetQuantity(productID string, qty int) error {
	if qty <= 0 {
		c.Remove(productID)
		return nil
	}
	if qty > MaxQuantity {
		return ErrInvalidQuantity
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = qty
			return nil
		}
	}
	return nil
}

// Remove drops the product from the cart.
func (c *Cart) Remove(productID string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of units across all lines.
func (c *Cart) Count() int {
	var n int
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Total returns the sum of line subtotals at current cart prices.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Lines freezes the cart into order line items.
func (c *Cart) Lines() []model.LineItem {
	lines := make([]model.LineItem, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, model.LineItem{
			Name:  item.Product.Name,
			Qty:   item.Quantity,
			Price: item.Product.SellPrice,
		})
	}
	return lines
}
