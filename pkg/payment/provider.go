package payment

import "context"

// Provider creates hosted payment sessions with an external payment
// gateway. Implementations must generate a fresh idempotency token per
// call so a caller-level retry is a new logical attempt, and must surface
// credential problems as ErrProviderNotConfigured.
type Provider interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatedPayment, error)
}

// CreatePaymentRequest describes one payment to create.
type CreatePaymentRequest struct {
	AmountMinorUnits int64
	Currency         string
	Description      string
	Metadata         Metadata
}

// CreatedPayment is the provider's view of a freshly created session.
type CreatedPayment struct {
	ID              string
	Status          string
	ConfirmationURL string
}
