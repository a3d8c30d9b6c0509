package controllers

import (
	"net/http"

	"github.com/douceurdz/storefront-backend/api/responses"
	"github.com/douceurdz/storefront-backend/api/validators"
	"github.com/douceurdz/storefront-backend/internal/session"
	pkgerrors "github.com/douceurdz/storefront-backend/pkg/errors"
	"github.com/douceurdz/storefront-backend/pkg/logger"
)

type updateProfilePayload struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Photo    string `json:"photo"`
}

type profilePayload struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Photo    string `json:"photo,omitempty"`
}

// ProfileGet returns the active session record plus the stored photo.
func ProfileGet(sessions *session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if sessions == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		record, ok := sessions.Current(ctx)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required"))
			return
		}

		responses.WriteSuccess(w, profilePayload{
			Username: record.Username,
			Email:    record.Email,
			Phone:    record.Phone,
			Photo:    sessions.Photo(ctx),
		})
	}
}

// ProfileUpdate rewrites the session record. An empty photo field
// leaves the stored photo alone.
func ProfileUpdate(sessions *session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if sessions == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var payload updateProfilePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		record, err := sessions.UpdateProfile(ctx, session.ProfileInput{
			Username: payload.Username,
			Email:    payload.Email,
			Phone:    payload.Phone,
			Photo:    payload.Photo,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, profilePayload{
			Username: record.Username,
			Email:    record.Email,
			Phone:    record.Phone,
			Photo:    sessions.Photo(ctx),
		})
	}
}
