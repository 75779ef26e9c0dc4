// package models defines the data model for the storefront client
package models

import (
	"fmt"
)

// Specification is a single free-text key/value attribute of a product.
//
// Order is meaningful: display order equals edit order. Keys are not unique;
// duplicate keys persist as separate entries.
type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Category represents a product grouping.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Product represents a catalog listing as served by the store API.
//
// Category and ImageURL are optional upstream; older products may have no
// Specifications at all.
type Product struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	Stock          int             `json:"stock"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	Category       *Category       `json:"category,omitempty"`
	Specifications []Specification `json:"specifications,omitempty"`
}

// CategoryName returns the category display name, or a fallback when the
// product is uncategorized.
func (p Product) CategoryName() string {
	if p.Category == nil || p.Category.Name == "" {
		return "Uncategorized"
	}
	return p.Category.Name
}

// InStock reports whether the product has stock available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// CartLine is one product-plus-quantity entry within the cart.
//
// Quantity is always >= 1; a line that would reach zero is removed instead.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	ImageRef  string  `json:"imageRef,omitempty"`
	Stock     int     `json:"stock"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns the line's contribution to the cart total.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Validate checks the cart line invariants.
func (l CartLine) Validate() error {
	if l.ProductID == "" {
		return fmt.Errorf("cart line missing product id")
	}
	if l.Quantity < 1 {
		return fmt.Errorf("cart line quantity must be >= 1, got %d", l.Quantity)
	}
	if l.UnitPrice < 0 {
		return fmt.Errorf("cart line unit price must be non-negative, got %v", l.UnitPrice)
	}
	return nil
}

// NewCartLine builds a cart line from a product and an initial quantity.
func NewCartLine(p Product, quantity int) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageRef:  p.ImageURL,
		Stock:     p.Stock,
		Quantity:  quantity,
	}
}
