// Package pricing derives totals from the cart and the catalog. All
// functions are pure; arithmetic stays in decimal units end to end and is
// only rounded to two digits when formatted for display.
package pricing

import (
	"github.com/douceurdz/storefront-backend/internal/cart"
	"github.com/douceurdz/storefront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// deliveryFee is fixed regardless of order size, item count or destination.
var deliveryFee = decimal.NewFromInt(150)

// LineTotal is price × quantity. A line whose product is missing from the
// catalog contributes zero; dangling references are skipped, not errored.
func LineTotal(line cart.Line, cat *catalog.Catalog) decimal.Decimal {
	product, ok := cat.FindByID(line.ProductID)
	if !ok {
		return decimal.Zero
	}
	return product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// Subtotal sums every line total.
func Subtotal(lines []cart.Line, cat *catalog.Catalog) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineTotal(line, cat))
	}
	return total
}

// DeliveryFee returns the fixed delivery fee in DA.
func DeliveryFee() decimal.Decimal {
	return deliveryFee
}

// GrandTotal is subtotal plus the delivery fee.
func GrandTotal(lines []cart.Line, cat *catalog.Catalog) decimal.Decimal {
	return Subtotal(lines, cat).Add(deliveryFee)
}

// QuoteLine is one priced cart entry in the rendered breakdown.
type QuoteLine struct {
	Product  catalog.Product
	Quantity int
	Total    decimal.Decimal
}

// Quote is the full priced view of a cart.
type Quote struct {
	Lines       []QuoteLine
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	GrandTotal  decimal.Decimal
}

// BuildQuote prices the cart for display. Lines whose product no longer
// exists are omitted from the breakdown and contribute nothing to the
// totals.
func BuildQuote(lines []cart.Line, cat *catalog.Catalog) Quote {
	quote := Quote{
		Lines:       make([]QuoteLine, 0, len(lines)),
		Subtotal:    decimal.Zero,
		DeliveryFee: deliveryFee,
	}

	for _, line := range lines {
		product, ok := cat.FindByID(line.ProductID)
		if !ok {
			continue
		}
		total := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		quote.Lines = append(quote.Lines, QuoteLine{
			Product:  product,
			Quantity: line.Quantity,
			Total:    total,
		})
		quote.Subtotal = quote.Subtotal.Add(total)
	}

	quote.GrandTotal = quote.Subtotal.Add(quote.DeliveryFee)
	return quote
}
