package generation

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Record is one stored generation with its request parameters and output.
type Record struct {
	ID         string    `bson:"_id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	Prompt     string    `bson:"prompt" json:"prompt"`
	Type       string    `bson:"type" json:"type"`
	Tone       string    `bson:"tone" json:"tone"`
	Length     string    `bson:"length" json:"length"`
	Result     string    `bson:"result" json:"result"`
	TokensUsed int       `bson:"tokensUsed" json:"tokensUsed"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// HistoryStore persists generation records per user.
type HistoryStore interface {
	// Save stores one record.
	Save(ctx context.Context, rec Record) error
	// List returns the user's records, newest first, at most limit
	// entries. limit <= 0 applies the store default.
	List(ctx context.Context, userID string, limit int) ([]Record, error)
}

// DefaultHistoryLimit bounds List when no explicit limit is given.
const DefaultHistoryLimit = 50

// memoryHistoryStore keeps records in memory for tests and development.
type memoryHistoryStore struct {
	mu      sync.RWMutex
	records map[string][]Record
}

// NewMemoryHistoryStore creates an in-memory HistoryStore.
func NewMemoryHistoryStore() HistoryStore {
	return &memoryHistoryStore{records: make(map[string][]Record)}
}

func (s *memoryHistoryStore) Save(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.UserID] = append(s.records[rec.UserID], rec)
	return nil
}

func (s *memoryHistoryStore) List(_ context.Context, userID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]Record, len(s.records[userID]))
	copy(records, s.records[userID])
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
