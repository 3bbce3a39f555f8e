package payment

import (
	"context"
	"sync"
	"time"
)

// SessionStore persists payment sessions keyed by the provider's payment
// ID. Implementations never delete records.
type SessionStore interface {
	// Get retrieves a session. Returns ErrSessionNotFound if none exists.
	Get(ctx context.Context, id string) (*Session, error)

	// Create inserts a freshly initiated session.
	Create(ctx context.Context, session *Session) error

	// UpsertStatus merge-writes the status and update time for a payment,
	// creating a bare record when the session was never seen locally.
	// Re-applying the same status is a no-op beyond refreshing updatedAt.
	UpsertStatus(ctx context.Context, id string, status SessionStatus, at time.Time) error
}

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemorySessionStore returns an in-memory SessionStore for tests.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]Session)}
}

func (s *memorySessionStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *memorySessionStore) Create(ctx context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *memorySessionStore) UpsertStatus(ctx context.Context, id string, status SessionStatus, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions[id]
	session.ID = id
	session.Status = status
	session.UpdatedAt = at
	s.sessions[id] = session
	return nil
}
