package entitlement

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Service resolves and mutates user entitlements. Reads have no side
// effects; the only write path is Grant.
type Service struct {
	store Store
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock substitutes the time source. Tests use it to fix the clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service over the given store. Panics on a nil store
// to fail fast at wiring time.
func NewService(store Store, opts ...Option) *Service {
	if store == nil {
		panic("entitlement: Store is required")
	}
	s := &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Status resolves the effective entitlement for a user. A missing record
// is free; a pro record whose expiry has passed is reported free without
// touching the stored record.
func (s *Service) Status(ctx context.Context, userID string) (Entitlement, error) {
	if userID == "" {
		return Entitlement{}, ErrMissingUserID
	}

	sub, err := s.store.Get(ctx, userID)
	if errors.Is(err, ErrSubscriptionNotFound) {
		return Entitlement{Status: StatusFree}, nil
	}
	if err != nil {
		return Entitlement{}, fmt.Errorf("failed to read subscription: %w", err)
	}

	if sub.Status == StatusPro && sub.ExpiredAt(s.now()) {
		return Entitlement{Status: StatusFree}, nil
	}

	status := sub.Status
	if status == "" {
		status = StatusFree
	}
	return Entitlement{Status: status, PlanID: sub.PlanID, ExpiresAt: sub.ExpiresAt}, nil
}

// Grant marks a user as pro for durationDays starting now. The expiry is
// recomputed from the current time on every call, never added to a prior
// expiry, so redelivered payment notifications converge to the same state.
// The merge-write leaves unrelated stored fields untouched.
func (s *Service) Grant(ctx context.Context, userID, planID string, durationDays int) (Entitlement, error) {
	if userID == "" {
		return Entitlement{}, ErrMissingUserID
	}
	if durationDays <= 0 {
		return Entitlement{}, ErrInvalidDuration
	}

	now := s.now()
	expires := now.AddDate(0, 0, durationDays)
	status := StatusPro

	err := s.store.Merge(ctx, userID, Patch{
		Status:    &status,
		PlanID:    &planID,
		UpdatedAt: &now,
		ExpiresAt: &expires,
	})
	if err != nil {
		return Entitlement{}, fmt.Errorf("failed to grant entitlement: %w", err)
	}

	return Entitlement{Status: StatusPro, PlanID: planID, ExpiresAt: &expires}, nil
}
