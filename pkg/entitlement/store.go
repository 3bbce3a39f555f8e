package entitlement

import (
	"context"
	"sync"
	"time"
)

// Patch carries the fields of a merge-write. Nil fields are left untouched
// in the stored record, so concurrent writers never clobber unrelated
// state.
type Patch struct {
	Status    *Status
	PlanID    *string
	UpdatedAt *time.Time
	ExpiresAt *time.Time
}

// Store persists subscription records keyed by user ID.
type Store interface {
	// Get retrieves the record for a user.
	// Returns ErrSubscriptionNotFound if none exists.
	Get(ctx context.Context, userID string) (*Subscription, error)

	// Merge applies the non-nil fields of patch to the user's record,
	// creating it if absent.
	Merge(ctx context.Context, userID string, patch Patch) error
}

type memoryStore struct {
	mu   sync.RWMutex
	subs map[string]Subscription
}

// NewMemoryStore returns an in-memory Store for tests and local runs.
func NewMemoryStore() Store {
	return &memoryStore{subs: make(map[string]Subscription)}
}

func (s *memoryStore) Get(ctx context.Context, userID string) (*Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subs[userID]
	if !ok {
		return nil, ErrSubscriptionNotFound
	}
	return &sub, nil
}

func (s *memoryStore) Merge(ctx context.Context, userID string, patch Patch) error {
	if userID == "" {
		return ErrMissingUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.subs[userID]
	sub.UserID = userID
	if patch.Status != nil {
		sub.Status = *patch.Status
	}
	if patch.PlanID != nil {
		sub.PlanID = *patch.PlanID
	}
	if patch.UpdatedAt != nil {
		sub.UpdatedAt = *patch.UpdatedAt
	}
	if patch.ExpiresAt != nil {
		sub.ExpiresAt = patch.ExpiresAt
	}
	s.subs[userID] = sub
	return nil
}
