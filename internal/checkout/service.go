package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/douceurdz/storefront-backend/pkg/config"
	"github.com/douceurdz/storefront-backend/pkg/enums"
	pkgerrors "github.com/douceurdz/storefront-backend/pkg/errors"
	"github.com/douceurdz/storefront-backend/pkg/logger"
)

// Order captures the checkout form at submit time. It is transient: it
// exists only for the duration of the simulated submission and is never
// persisted.
type Order struct {
	FullName  string
	Phone     string
	Address   string
	CCPNumber string
}

// Confirmer is the simulated external confirmation. The call carries no
// cancellation token: once started it runs to completion.
type Confirmer interface {
	Confirm(ctx context.Context, order Order) error
}

// TimedConfirmer stands in for the real payment call with a fixed delay
// and a binary success outcome.
type TimedConfirmer struct {
	Delay time.Duration
}

// Confirm waits out the simulated network delay and succeeds.
func (c TimedConfirmer) Confirm(ctx context.Context, order Order) error {
	if c.Delay > 0 {
		time.Sleep(c.Delay)
	}
	return nil
}

type cartClearer interface {
	Clear(ctx context.Context) error
}

// Service drives the checkout workflow:
//
//	idle -> submitting -> success -> idle (cart cleared)
//
// with an internal submitting -> idle edge when confirmation fails. Entry
// to submitting is guarded against concurrent double-submit.
type Service struct {
	confirmer    Confirmer
	carts        cartClearer
	displayDelay time.Duration
	logg         *logger.Logger

	mu    sync.Mutex
	state enums.CheckoutState
	// gen identifies the submission that owns the pending success timer.
	// A timer from an earlier submission finds a different gen and does
	// nothing.
	gen uint64
}

// NewService builds the workflow. A nil confirmer falls back to the
// configured simulated one.
func NewService(confirmer Confirmer, carts cartClearer, cfg config.CheckoutConfig, logg *logger.Logger) (*Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart clearer required")
	}
	if confirmer == nil {
		confirmer = TimedConfirmer{Delay: cfg.ConfirmDelay}
	}
	return &Service{
		confirmer:    confirmer,
		carts:        carts,
		displayDelay: cfg.SuccessDisplayDelay,
		logg:         logg,
		state:        enums.CheckoutStateIdle,
	}, nil
}

// State reports the workflow phase.
func (s *Service) State() enums.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit runs one checkout attempt. It blocks through the simulated
// confirmation, then schedules the cart clear and the return to idle
// after the success display delay. A submit while another is in flight is
// rejected without starting a second request.
func (s *Service) Submit(ctx context.Context, order Order) error {
	s.mu.Lock()
	if s.state == enums.CheckoutStateSubmitting {
		s.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeStateConflict, "an order is already being submitted")
	}
	s.state = enums.CheckoutStateSubmitting
	s.mu.Unlock()

	// The caller navigating away must not abort the in-flight call or the
	// deferred cart clear.
	ctx = context.WithoutCancel(ctx)

	if err := s.confirmer.Confirm(ctx, order); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "order confirmation failed", err)
		}
		s.setState(enums.CheckoutStateIdle)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "order submission failed")
	}

	s.mu.Lock()
	s.state = enums.CheckoutStateSuccess
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	time.AfterFunc(s.displayDelay, func() {
		s.finish(ctx, gen)
	})
	return nil
}

// finish clears the cart and returns the workflow to idle once the
// success message has been displayed. The transition only happens when
// the machine is still showing this submission's success: a newer
// submission supersedes the timer, which then does nothing.
func (s *Service) finish(ctx context.Context, gen uint64) {
	s.mu.Lock()
	if s.state != enums.CheckoutStateSuccess || s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.state = enums.CheckoutStateIdle
	s.mu.Unlock()

	if err := s.carts.Clear(ctx); err != nil && s.logg != nil {
		s.logg.Error(ctx, "clearing cart after checkout", err)
	}
}

func (s *Service) setState(state enums.CheckoutState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
