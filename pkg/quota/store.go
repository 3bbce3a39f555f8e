package quota

import (
	"context"
	"sync"
)

// Usage is the stored daily counter for one subject. A single record per
// subject is kept and overwritten; the date carries the day it counts for.
type Usage struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Store persists usage records keyed by an opaque subject key (user or
// device identifier). A missing record is returned as a zero Usage, which
// the tracker treats as "nothing consumed today".
type Store interface {
	Get(ctx context.Context, key string) (Usage, error)
	Save(ctx context.Context, key string, usage Usage) error
}

type memoryStore struct {
	mu    sync.RWMutex
	usage map[string]Usage
}

// NewMemoryStore returns an in-memory Store for tests and single-node runs.
func NewMemoryStore() Store {
	return &memoryStore{usage: make(map[string]Usage)}
}

func (s *memoryStore) Get(ctx context.Context, key string) (Usage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usage[key], nil
}

func (s *memoryStore) Save(ctx context.Context, key string, usage Usage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usage[key] = usage
	return nil
}
