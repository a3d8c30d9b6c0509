package catalog

import (
	"fmt"

	"github.com/douceurdz/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product is one purchasable catalog entry. Products are defined at startup
// and never mutated at runtime.
type Product struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Description     string         `json:"description"`
	FullDescription string         `json:"fullDescription"`
	Image           string         `json:"image"`
	Flavors         []string       `json:"flavors"`
	ServingSize     string         `json:"servingSize"`
	Category        enums.Category `json:"category"`
}

// Catalog is the immutable, process-wide product list.
type Catalog struct {
	products []Product
	byID     map[int]Product
}

// New validates and freezes the product list. IDs must be positive and
// unique across the whole catalog.
func New(products []Product) (*Catalog, error) {
	byID := make(map[int]Product, len(products))
	frozen := make([]Product, len(products))
	copy(frozen, products)

	for _, p := range frozen {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %q: id must be positive", p.Name)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if !p.Category.IsValid() {
			return nil, fmt.Errorf("product %d: invalid category %q", p.ID, p.Category)
		}
		byID[p.ID] = p
	}

	return &Catalog{products: frozen, byID: byID}, nil
}

// All returns the products in catalog order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the catalog size.
func (c *Catalog) Len() int {
	return len(c.products)
}

// FindByID looks a product up by its identity key.
func (c *Catalog) FindByID(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Subset returns the named products in the given order, skipping unknown
// ids. Used for the curated collection pages.
func (c *Catalog) Subset(ids ...int) []Product {
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
