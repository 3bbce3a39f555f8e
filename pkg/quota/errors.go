package quota

import "errors"

var (
	// ErrMissingKey is returned when an operation is called without a subject key.
	ErrMissingKey = errors.New("quota subject key is required")

	// ErrExhausted is returned by Consume when the daily allowance is spent.
	ErrExhausted = errors.New("daily free quota exhausted")
)
