package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/douceurdz/storefront-backend/internal/cart"
	"github.com/douceurdz/storefront-backend/internal/checkout"
	"github.com/douceurdz/storefront-backend/pkg/config"
	"github.com/douceurdz/storefront-backend/pkg/enums"
	"github.com/douceurdz/storefront-backend/pkg/kv"
)

type instantConfirmer struct{}

func (instantConfirmer) Confirm(ctx context.Context, order checkout.Order) error { return nil }

type blockedConfirmer struct {
	release chan struct{}
}

func (c *blockedConfirmer) Confirm(ctx context.Context, order checkout.Order) error {
	<-c.release
	return nil
}

func newCheckoutFixture(t *testing.T, confirmer checkout.Confirmer) (*checkout.Service, *cart.Service, *kv.MemoryBackend) {
	t.Helper()
	backend := kv.NewMemoryBackend()
	carts := cart.NewService(backend, nil)
	svc, err := checkout.NewService(confirmer, carts, config.CheckoutConfig{
		ConfirmDelay:        time.Millisecond,
		SuccessDisplayDelay: 5 * time.Millisecond,
	}, nil)
	require.NoError(t, err)
	return svc, carts, backend
}

func validOrder() map[string]string {
	return map[string]string{
		"fullName":  "Marie Dupont",
		"phone":     "0550123456",
		"address":   "12 Rue des Jardins, Alger",
		"ccpNumber": "1234567890",
	}
}

func TestCheckoutStateStartsIdle(t *testing.T) {
	svc, _, _ := newCheckoutFixture(t, instantConfirmer{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout", nil)
	rec := httptest.NewRecorder()
	CheckoutState(svc, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"state":"idle"`)
}

func TestCheckoutSubmitClearsCartAfterSuccess(t *testing.T) {
	svc, carts, backend := newCheckoutFixture(t, instantConfirmer{})
	_, err := carts.Upsert(context.Background(), 1, 2)
	require.NoError(t, err)

	rec := postJSON(t, CheckoutSubmit(svc, nil), "/api/v1/checkout", validOrder())

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"state":"success"`)

	require.Eventually(t, func() bool {
		return svc.State() == enums.CheckoutStateIdle && !backend.Has(cart.StorageKey)
	}, time.Second, time.Millisecond)
}

func TestCheckoutSubmitRejectsConcurrentOrder(t *testing.T) {
	confirmer := &blockedConfirmer{release: make(chan struct{})}
	svc, carts, _ := newCheckoutFixture(t, confirmer)
	_, err := carts.Upsert(context.Background(), 1, 1)
	require.NoError(t, err)

	first := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		first <- postJSONQuiet(CheckoutSubmit(svc, nil), validOrder())
	}()

	require.Eventually(t, func() bool {
		return svc.State() == enums.CheckoutStateSubmitting
	}, time.Second, time.Millisecond)

	second := postJSON(t, CheckoutSubmit(svc, nil), "/api/v1/checkout", validOrder())
	require.Equal(t, http.StatusUnprocessableEntity, second.Code)

	close(confirmer.release)
	require.Equal(t, http.StatusOK, (<-first).Code)
}

func TestCheckoutSubmitValidatesCCPNumber(t *testing.T) {
	svc, _, _ := newCheckoutFixture(t, instantConfirmer{})

	order := validOrder()
	order["ccpNumber"] = "12-34"
	rec := postJSON(t, CheckoutSubmit(svc, nil), "/api/v1/checkout", order)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "ccpNumber")
}
