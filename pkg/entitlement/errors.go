package entitlement

import "errors"

var (
	// ErrSubscriptionNotFound is returned by stores when no record exists
	// for a user. The resolver treats it as "free", not as a failure.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrMissingUserID is returned when an operation is called without a user.
	ErrMissingUserID = errors.New("user ID is required")

	// ErrInvalidDuration is returned for grants with a non-positive duration.
	ErrInvalidDuration = errors.New("entitlement duration must be positive")
)
