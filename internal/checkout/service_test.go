package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/douceurdz/storefront-backend/pkg/config"
	"github.com/douceurdz/storefront-backend/pkg/enums"
	pkgerrors "github.com/douceurdz/storefront-backend/pkg/errors"
	"github.com/stretchr/testify/require"
)

type stubClearer struct {
	mu    sync.Mutex
	calls int
}

func (c *stubClearer) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return nil
}

func (c *stubClearer) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type gatedConfirmer struct {
	release chan struct{}
	calls   int
	mu      sync.Mutex
}

func (c *gatedConfirmer) Confirm(ctx context.Context, order Order) error {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	<-c.release
	return nil
}

func (c *gatedConfirmer) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type failingConfirmer struct{}

func (failingConfirmer) Confirm(ctx context.Context, order Order) error {
	return errors.New("simulated outage")
}

func sampleOrder() Order {
	return Order{
		FullName:  "Amel B.",
		Phone:     "0550 12 34 56",
		Address:   "12 Rue Didouche Mourad, Alger",
		CCPNumber: "1234567890",
	}
}

func TestSubmitHappyPathClearsCartAndReturnsToIdle(t *testing.T) {
	t.Parallel()

	carts := &stubClearer{}
	svc, err := NewService(TimedConfirmer{}, carts, config.CheckoutConfig{SuccessDisplayDelay: 10 * time.Millisecond}, nil)
	require.NoError(t, err)

	require.Equal(t, enums.CheckoutStateIdle, svc.State())
	require.NoError(t, svc.Submit(context.Background(), sampleOrder()))
	require.Equal(t, enums.CheckoutStateSuccess, svc.State())

	require.Eventually(t, func() bool {
		return svc.State() == enums.CheckoutStateIdle && carts.count() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestSubmitWhileSubmittingIsRejected(t *testing.T) {
	t.Parallel()

	carts := &stubClearer{}
	confirmer := &gatedConfirmer{release: make(chan struct{})}
	svc, err := NewService(confirmer, carts, config.CheckoutConfig{SuccessDisplayDelay: time.Millisecond}, nil)
	require.NoError(t, err)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- svc.Submit(context.Background(), sampleOrder())
	}()

	require.Eventually(t, func() bool {
		return svc.State() == enums.CheckoutStateSubmitting
	}, time.Second, time.Millisecond)

	err = svc.Submit(context.Background(), sampleOrder())
	require.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	close(confirmer.release)
	require.NoError(t, <-firstDone)

	require.Eventually(t, func() bool {
		return svc.State() == enums.CheckoutStateIdle
	}, time.Second, time.Millisecond)

	require.Equal(t, 1, confirmer.count(), "no second in-flight request")
	require.Equal(t, 1, carts.count(), "no double clear")
}

func TestSubmitFailureReturnsToIdleWithoutClearing(t *testing.T) {
	t.Parallel()

	carts := &stubClearer{}
	svc, err := NewService(failingConfirmer{}, carts, config.CheckoutConfig{}, nil)
	require.NoError(t, err)

	err = svc.Submit(context.Background(), sampleOrder())
	require.Equal(t, pkgerrors.CodeDependency, pkgerrors.As(err).Code())
	require.Equal(t, enums.CheckoutStateIdle, svc.State())
	require.Equal(t, 0, carts.count())

	// The workflow is reusable after a failure: the retry is accepted and
	// fails on the outage again, not on a state conflict.
	err = svc.Submit(context.Background(), sampleOrder())
	require.Equal(t, pkgerrors.CodeDependency, pkgerrors.As(err).Code())
}

func TestSubmitDuringSuccessIsNotResetByEarlierTimer(t *testing.T) {
	t.Parallel()

	carts := &stubClearer{}
	confirmer := &gatedConfirmer{release: make(chan struct{}, 1)}
	confirmer.release <- struct{}{} // first confirmation completes at once
	svc, err := NewService(confirmer, carts, config.CheckoutConfig{SuccessDisplayDelay: 20 * time.Millisecond}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Submit(context.Background(), sampleOrder()))
	require.Equal(t, enums.CheckoutStateSuccess, svc.State())

	// Second order enters while the first success message is still up.
	secondDone := make(chan error, 1)
	go func() {
		secondDone <- svc.Submit(context.Background(), sampleOrder())
	}()
	require.Eventually(t, func() bool {
		return svc.State() == enums.CheckoutStateSubmitting
	}, time.Second, time.Millisecond)

	// Let the first submission's success timer fire. It must not touch
	// the machine or the cart while the second confirmation is running.
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, enums.CheckoutStateSubmitting, svc.State())
	require.Equal(t, 0, carts.count())

	err = svc.Submit(context.Background(), sampleOrder())
	require.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	close(confirmer.release)
	require.NoError(t, <-secondDone)
	require.Eventually(t, func() bool {
		return svc.State() == enums.CheckoutStateIdle && carts.count() == 1
	}, time.Second, time.Millisecond)

	require.Equal(t, 2, confirmer.count(), "only the two accepted submissions ran")
}

func TestSubmitSurvivesCallerCancellation(t *testing.T) {
	t.Parallel()

	carts := &stubClearer{}
	svc, err := NewService(TimedConfirmer{Delay: 5 * time.Millisecond}, carts,
		config.CheckoutConfig{SuccessDisplayDelay: 5 * time.Millisecond}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // the visitor navigated away before submitting finished

	require.NoError(t, svc.Submit(ctx, sampleOrder()))
	require.Eventually(t, func() bool {
		return carts.count() == 1
	}, time.Second, time.Millisecond, "the deferred clear still fires")
}

func TestNewServiceRequiresCartClearer(t *testing.T) {
	t.Parallel()

	_, err := NewService(nil, nil, config.CheckoutConfig{}, nil)
	require.Error(t, err)
}
