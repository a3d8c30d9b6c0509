package enums

import "fmt"

// CheckoutState tags the checkout workflow's phase. The workflow only ever
// holds one of these; there is no flag combination outside the enum.
type CheckoutState string

const (
	CheckoutStateIdle       CheckoutState = "idle"
	CheckoutStateSubmitting CheckoutState = "submitting"
	CheckoutStateSuccess    CheckoutState = "success"
)

var validCheckoutStates = []CheckoutState{
	CheckoutStateIdle,
	CheckoutStateSubmitting,
	CheckoutStateSuccess,
}

// String implements fmt.Stringer.
func (s CheckoutState) String() string {
	return string(s)
}

// IsValid reports whether the state is recognized.
func (s CheckoutState) IsValid() bool {
	for _, candidate := range validCheckoutStates {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCheckoutState converts a raw string into a CheckoutState.
func ParseCheckoutState(value string) (CheckoutState, error) {
	for _, candidate := range validCheckoutStates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid checkout state %q", value)
}
