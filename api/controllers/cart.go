package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/douceurdz/storefront-backend/api/responses"
	"github.com/douceurdz/storefront-backend/api/validators"
	"github.com/douceurdz/storefront-backend/internal/cart"
	"github.com/douceurdz/storefront-backend/internal/catalog"
	"github.com/douceurdz/storefront-backend/internal/pricing"
	pkgerrors "github.com/douceurdz/storefront-backend/pkg/errors"
	"github.com/douceurdz/storefront-backend/pkg/logger"
)

type upsertCartItemPayload struct {
	ProductID int `json:"id" validate:"required,gt=0"`
	Quantity  int `json:"quantity"`
}

type quoteLinePayload struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Total    string          `json:"total"`
}

type quotePayload struct {
	Lines       []quoteLinePayload `json:"lines"`
	Subtotal    string             `json:"subtotal"`
	DeliveryFee string             `json:"deliveryFee"`
	GrandTotal  string             `json:"grandTotal"`
}

func renderQuote(q pricing.Quote) quotePayload {
	lines := make([]quoteLinePayload, 0, len(q.Lines))
	for _, line := range q.Lines {
		lines = append(lines, quoteLinePayload{
			Product:  line.Product,
			Quantity: line.Quantity,
			Total:    line.Total.StringFixed(2),
		})
	}
	return quotePayload{
		Lines:       lines,
		Subtotal:    q.Subtotal.StringFixed(2),
		DeliveryFee: q.DeliveryFee.StringFixed(2),
		GrandTotal:  q.GrandTotal.StringFixed(2),
	}
}

// CartQuote prices the persisted cart against the catalog. Lines whose
// product no longer exists are omitted and priced at zero.
func CartQuote(carts *cart.Service, cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if carts == nil || cat == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		quote := pricing.BuildQuote(carts.Get(ctx), cat)
		responses.WriteSuccess(w, renderQuote(quote))
	}
}

// CartUpsert adds the quantity delta to the line for the product,
// creating it when absent. Quantities never drop below one.
func CartUpsert(carts *cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if carts == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload upsertCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		lines, err := carts.Upsert(ctx, payload.ProductID, payload.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, lines)
	}
}

// CartRemove deletes the line for the product. Removing an absent
// product succeeds and leaves the cart untouched.
func CartRemove(carts *cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if carts == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		id, err := validators.ParsePathInt(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		lines, err := carts.Remove(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, lines)
	}
}

// CartClear deletes the whole cart record.
func CartClear(carts *cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if carts == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		if err := carts.Clear(ctx); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, []cart.Line{})
	}
}
