package middleware

import "context"

type contextKey string

const ctxUsername contextKey = "username"

// UsernameFromContext returns the logged-in username seeded by the session
// guard, "" when the request is anonymous.
func UsernameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUsername).(string); ok {
		return v
	}
	return ""
}

// WithUsername injects the username into the context.
func WithUsername(ctx context.Context, username string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUsername, username)
}
