package middleware

import (
	"context"
	"net/http"

	"github.com/douceurdz/storefront-backend/api/responses"
	"github.com/douceurdz/storefront-backend/internal/session"
	pkgerrors "github.com/douceurdz/storefront-backend/pkg/errors"
	"github.com/douceurdz/storefront-backend/pkg/logger"
)

// SessionChecker is the guard's view of the session store.
type SessionChecker interface {
	Current(ctx context.Context) (session.Record, bool)
}

// RequireSession rejects API requests without a persisted session and
// seeds the request context with the username. The only predicate is the
// existence of a non-empty username in the session store.
func RequireSession(sessions SessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			record, ok := sessions.Current(r.Context())
			if !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required"))
				return
			}

			ctx := WithUsername(r.Context(), record.Username)
			if logg != nil {
				ctx = logg.WithUsername(ctx, record.Username)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GuardPage redirects unauthenticated visitors of a storefront page to
// the login page instead of returning an error envelope.
func GuardPage(sessions SessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			record, ok := sessions.Current(r.Context())
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := WithUsername(r.Context(), record.Username)
			if logg != nil {
				ctx = logg.WithUsername(ctx, record.Username)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
