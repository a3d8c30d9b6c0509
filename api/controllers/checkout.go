package controllers

import (
	"net/http"

	"github.com/douceurdz/storefront-backend/api/responses"
	"github.com/douceurdz/storefront-backend/api/validators"
	"github.com/douceurdz/storefront-backend/internal/checkout"
	pkgerrors "github.com/douceurdz/storefront-backend/pkg/errors"
	"github.com/douceurdz/storefront-backend/pkg/logger"
)

type submitOrderPayload struct {
	FullName  string `json:"fullName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	CCPNumber string `json:"ccpNumber" validate:"required,numeric"`
}

// CheckoutState reports where the order flow currently sits.
func CheckoutState(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"state": svc.State().String()})
	}
}

// CheckoutSubmit runs the order through confirmation. A second submit
// while one is in flight is rejected.
func CheckoutSubmit(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload submitOrderPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		err := svc.Submit(ctx, checkout.Order{
			FullName:  payload.FullName,
			Phone:     payload.Phone,
			Address:   payload.Address,
			CCPNumber: payload.CCPNumber,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"state": svc.State().String()})
	}
}
