package payment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/socialynx/backend/pkg/catalog"
	"github.com/socialynx/backend/pkg/email"
	"github.com/socialynx/backend/pkg/entitlement"
	"github.com/socialynx/backend/pkg/logger"
)

// Service implements the payment session lifecycle: session creation on
// behalf of users and notification processing on behalf of the provider.
type Service struct {
	catalog      *catalog.Catalog
	provider     Provider
	sessions     SessionStore
	entitlements *entitlement.Service
	mailer       email.EmailSender
	log          *slog.Logger
	now          func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for processing anomalies.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMailer enables best-effort receipt email after a successful payment.
func WithMailer(m email.EmailSender) Option {
	return func(s *Service) {
		if m != nil {
			s.mailer = m
		}
	}
}

// WithClock substitutes the time source. Tests use it to fix grant times.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the payment flow. All four collaborators are required;
// nil panics here so misconfiguration fails at startup, not on the first
// payment.
func NewService(cat *catalog.Catalog, provider Provider, sessions SessionStore, entitlements *entitlement.Service, opts ...Option) *Service {
	if cat == nil {
		panic("payment: Catalog is required")
	}
	if provider == nil {
		panic("payment: Provider is required")
	}
	if sessions == nil {
		panic("payment: SessionStore is required")
	}
	if entitlements == nil {
		panic("payment: entitlement Service is required")
	}

	s := &Service{
		catalog:      cat,
		provider:     provider,
		sessions:     sessions,
		entitlements: entitlements,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession creates a hosted payment session for userID on planID and
// records it locally as pending. The returned link sends the user to the
// provider's checkout page; payment completes out of band and the session
// advances only through HandleNotification. Errors are not retried here -
// a user-level retry is a new attempt with a new idempotency token.
func (s *Service) CreateSession(ctx context.Context, userID, planID, userEmail string) (*SessionLink, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	plan, err := s.catalog.Get(ctx, planID)
	if err != nil {
		return nil, err
	}

	created, err := s.provider.CreatePayment(ctx, CreatePaymentRequest{
		AmountMinorUnits: plan.PriceMinorUnits,
		Currency:         plan.Currency,
		Description:      plan.Description,
		Metadata:         Metadata{UserID: userID, PlanID: plan.ID},
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &Session{
		ID:              created.ID,
		UserID:          userID,
		PlanID:          plan.ID,
		Status:          StatusPending,
		ConfirmationURL: created.ConfirmationURL,
		Email:           userEmail,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to record payment session: %w", err)
	}

	s.log.InfoContext(ctx, "payment session created",
		logger.PaymentID(created.ID), logger.UserID(userID), logger.PlanID(plan.ID))

	return &SessionLink{ConfirmationURL: created.ConfirmationURL, PaymentID: created.ID}, nil
}

// Session returns the local record for a payment ID.
func (s *Service) Session(ctx context.Context, id string) (*Session, error) {
	return s.sessions.Get(ctx, id)
}

// HandleNotification processes one provider webhook delivery. Deliveries
// may repeat and arrive out of order; the session update is an idempotent
// merge and the entitlement grant recomputes expiry from the processing
// time, so the final state converges regardless of delivery order.
//
// A malformed payload returns ErrMalformedNotification. Unresolvable
// metadata on a succeeded payment is a log-worthy anomaly, not a failure:
// the notification is still acknowledged. Store failures return an error
// so the provider redelivers.
func (s *Service) HandleNotification(ctx context.Context, n Notification) error {
	if n.Event == "" || n.Object.ID == "" || n.Object.Status == "" {
		return ErrMalformedNotification
	}

	status := SessionStatus(n.Object.Status)
	now := s.now()
	if err := s.sessions.UpsertStatus(ctx, n.Object.ID, status, now); err != nil {
		return fmt.Errorf("failed to update payment session: %w", err)
	}

	if status != StatusSucceeded {
		s.log.InfoContext(ctx, "payment status updated",
			logger.PaymentID(n.Object.ID), slog.String("status", string(status)))
		return nil
	}

	meta := n.Object.Metadata
	if meta.UserID == "" || meta.PlanID == "" {
		s.log.WarnContext(ctx, "succeeded payment without correlation metadata, skipping entitlement",
			logger.PaymentID(n.Object.ID))
		return nil
	}

	plan, err := s.catalog.Get(ctx, meta.PlanID)
	if err != nil {
		s.log.WarnContext(ctx, "succeeded payment references unknown plan, skipping entitlement",
			logger.PaymentID(n.Object.ID), logger.PlanID(meta.PlanID), logger.Error(err))
		return nil
	}

	ent, err := s.entitlements.Grant(ctx, meta.UserID, plan.ID, plan.DurationDays)
	if err != nil {
		return fmt.Errorf("failed to grant entitlement: %w", err)
	}

	s.log.InfoContext(ctx, "entitlement granted",
		logger.PaymentID(n.Object.ID), logger.UserID(meta.UserID), logger.PlanID(plan.ID),
		slog.Time("expires_at", *ent.ExpiresAt))

	s.sendReceipt(ctx, n.Object.ID, plan)
	return nil
}

// sendReceipt mails a payment receipt when the session carries an email
// address. Best effort only: receipt problems never fail the webhook.
func (s *Service) sendReceipt(ctx context.Context, paymentID string, plan catalog.Plan) {
	if s.mailer == nil {
		return
	}

	session, err := s.sessions.Get(ctx, paymentID)
	if err != nil || session.Email == "" {
		return
	}

	if err := s.mailer.SendEmail(ctx, receiptEmail(session.Email, plan)); err != nil {
		s.log.WarnContext(ctx, "failed to send payment receipt",
			logger.PaymentID(paymentID), logger.Error(err))
	}
}
