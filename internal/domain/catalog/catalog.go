// Package catalog defines the static product catalog.
// Prices held here are authoritative for checkout; client-supplied prices are never used.
package catalog

import "github.com/shopspring/decimal"

// Product is a purchasable item with a server-held unit price.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// Catalog is an immutable, ordered collection of products.
// It is fixed at construction and safe for unlimited concurrent reads.
type Catalog struct {
	products []Product
	index    map[string]int
}

// New creates a catalog from the given products, preserving their order.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		index:    make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.index[p.ID] = i
	}
	return c
}

// Default returns the fixed storefront catalog.
func Default() *Catalog {
	return New([]Product{
		{ID: "p1", Name: "Wireless Earbuds", Price: decimal.RequireFromString("49.99")},
		{ID: "p2", Name: "Portable Charger", Price: decimal.RequireFromString("29.99")},
		{ID: "p3", Name: "Smart LED Bulb", Price: decimal.RequireFromString("14.99")},
		{ID: "p4", Name: "Laptop Stand", Price: decimal.RequireFromString("24.99")},
	})
}

// Products returns the products in display order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find returns the product with the given ID.
func (c *Catalog) Find(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
