package payment

import "errors"

var (
	// ErrMissingUserID is returned when a session is requested without a user.
	ErrMissingUserID = errors.New("user ID is required")

	// ErrSessionNotFound is returned when no session exists for a payment ID.
	ErrSessionNotFound = errors.New("payment session not found")

	// ErrProviderNotConfigured signals missing provider credentials. This is
	// operator-correctable misconfiguration and surfaces to callers as a
	// generic service-unavailable, never with credential detail.
	ErrProviderNotConfigured = errors.New("payment provider is not configured")

	// ErrProviderRequestFailed wraps provider transport failures and non-2xx
	// responses. Detail stays in logs; users get a generic failure.
	ErrProviderRequestFailed = errors.New("payment provider request failed")

	// ErrMalformedNotification is returned for webhook payloads missing the
	// event name or the payment object's id/status. Distinct from processing
	// failures so the provider's retry semantics stay predictable.
	ErrMalformedNotification = errors.New("malformed payment notification")

	// ErrInvalidSignature is returned when webhook signature verification is
	// enabled and the payload does not carry a valid provider signature.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)
