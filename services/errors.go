package services

import "errors"

// Recoverable business errors, surfaced to controllers for user-facing
// messages. Compare with errors.Is.
var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrItemUnavailable      = errors.New("item is not available")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrMissingPaymentMethod = errors.New("payment method is required")
)
