package cart

import (
	"context"
	"fmt"

	"github.com/douceurdz/storefront-backend/pkg/kv"
	"github.com/douceurdz/storefront-backend/pkg/logger"
)

// StorageKey is the persisted key holding the cart list.
const StorageKey = "cart"

// Line is one cart entry, keyed by product identity. The json shape is the
// persisted wire format.
type Line struct {
	ProductID int `json:"id"`
	Quantity  int `json:"quantity"`
}

// ValidateLines rejects content that violates the cart invariants: every
// quantity at least 1, at most one line per product id.
func ValidateLines(lines []Line) error {
	seen := make(map[int]bool, len(lines))
	for _, line := range lines {
		if line.ProductID <= 0 {
			return fmt.Errorf("line with non-positive product id %d", line.ProductID)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("product %d: quantity %d below 1", line.ProductID, line.Quantity)
		}
		if seen[line.ProductID] {
			return fmt.Errorf("duplicate line for product %d", line.ProductID)
		}
		seen[line.ProductID] = true
	}
	return nil
}

// Service is the cart store. Every mutation persists the full list
// synchronously; there is no batching and no transaction spanning calls.
// Lines referencing products missing from the catalog are kept as
// tombstones here and skipped by pricing and display.
type Service struct {
	store *kv.Store[[]Line]
	logg  *logger.Logger
}

// NewService binds the cart store to a persistence backend.
func NewService(backend kv.Backend, logg *logger.Logger) *Service {
	return &Service{
		store: kv.NewStore(backend, StorageKey, ValidateLines, logg),
		logg:  logg,
	}
}

// Get loads the persisted lines in insertion order. Missing or malformed
// data degrades to an empty cart, never an error.
func (s *Service) Get(ctx context.Context) []Line {
	lines, ok := s.store.Load(ctx)
	if !ok {
		return []Line{}
	}
	return lines
}

// Upsert adds quantityDelta to the line for productID, clamping the result
// to a minimum of 1; a missing line is created with max(1, quantityDelta).
// Decrements never delete a line, only Remove and Clear do.
func (s *Service) Upsert(ctx context.Context, productID, quantityDelta int) ([]Line, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("product id must be positive")
	}

	lines := s.Get(ctx)
	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = clampQuantity(lines[i].Quantity + quantityDelta)
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, Line{ProductID: productID, Quantity: clampQuantity(quantityDelta)})
	}

	if err := s.store.Save(ctx, lines); err != nil {
		return nil, fmt.Errorf("persisting cart: %w", err)
	}
	return lines, nil
}

// Remove deletes the line for productID if present; removing an absent
// line is a no-op, so the call is idempotent.
func (s *Service) Remove(ctx context.Context, productID int) ([]Line, error) {
	lines := s.Get(ctx)
	kept := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(lines) {
		// Nothing removed: don't write, or an untouched cart (possibly no
		// cart at all) would be persisted as an empty list.
		return kept, nil
	}

	if err := s.store.Save(ctx, kept); err != nil {
		return nil, fmt.Errorf("persisting cart: %w", err)
	}
	return kept, nil
}

// Clear removes the persisted key entirely rather than writing an empty
// list, so "no cart" and "empty cart" read the same. Deliberate.
func (s *Service) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
