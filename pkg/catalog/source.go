package catalog

import (
	"context"
	"slices"
	"sync"
)

// Source loads the plan set from a backing store. Implementations return
// the plans in any order; the Catalog sorts by DisplayOrder.
type Source interface {
	Load(ctx context.Context) ([]Plan, error)
}

type inMemSource struct {
	mu    sync.RWMutex
	plans []Plan
}

// NewInMemSource returns a Source serving a fixed plan set from memory.
// Intended for tests and for environments without a remote catalog.
func NewInMemSource(plans ...Plan) Source {
	return &inMemSource{plans: slices.Clone(plans)}
}

func (s *inMemSource) Load(ctx context.Context) ([]Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.plans), nil
}
