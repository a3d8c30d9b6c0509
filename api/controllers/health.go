package controllers

import (
	"context"
	"net/http"

	"github.com/douceurdz/storefront-backend/api/responses"
	pkgerrors "github.com/douceurdz/storefront-backend/pkg/errors"
	"github.com/douceurdz/storefront-backend/pkg/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive reports process liveness plus store reachability.
func HealthLive(store Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store != nil {
			if err := store.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}
