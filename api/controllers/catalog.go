package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/douceurdz/storefront-backend/api/responses"
	"github.com/douceurdz/storefront-backend/api/validators"
	"github.com/douceurdz/storefront-backend/internal/catalog"
	pkgerrors "github.com/douceurdz/storefront-backend/pkg/errors"
	"github.com/douceurdz/storefront-backend/pkg/logger"
)

// ProductList returns the catalog filtered by the q and categories
// query parameters. No parameters means the whole catalog in display
// order.
func ProductList(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cat == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		sel, err := validators.ParseCategorySelection(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		query := r.URL.Query().Get("q")
		responses.WriteSuccess(w, catalog.Filter(cat.All(), query, sel))
	}
}

// ProductByID returns a single product or a not-found error.
func ProductByID(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cat == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		id, err := validators.ParsePathInt(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, ok := cat.FindByID(id)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// CollectionByName returns one of the curated storefront collections.
func CollectionByName(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cat == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var products []catalog.Product
		switch strings.ToLower(chi.URLParam(r, "name")) {
		case "traditional":
			products = cat.Traditional()
		case "festive":
			products = cat.Festive()
		case "french":
			products = cat.French()
		default:
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "collection not found"))
			return
		}

		responses.WriteSuccess(w, products)
	}
}
