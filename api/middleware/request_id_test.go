package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, inbound string) string {
	t.Helper()

	handler := RequestID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/shop", nil)
	if inbound != "" {
		req.Header.Set("X-Request-Id", inbound)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Header().Get("X-Request-Id")
}

func TestRequestIDEchoesValidInboundID(t *testing.T) {
	id := uuid.NewString()
	require.Equal(t, id, serveWithRequestID(t, id))
}

func TestRequestIDReplacesMissingOrBogusID(t *testing.T) {
	for _, inbound := range []string{"", "not-a-uuid"} {
		got := serveWithRequestID(t, inbound)
		require.NotEqual(t, inbound, got)
		require.NoError(t, uuid.Validate(got))
	}
}
