package catalog

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"github.com/socialynx/backend/pkg/logger"
)

// Catalog resolves plan IDs against the remote source, degrading to the
// embedded fallback set so reads never fail on transient source errors.
type Catalog struct {
	source   Source
	fallback []Plan
	log      *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for degradation warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
		}
	}
}

// WithFallback replaces the embedded fallback plan set.
func WithFallback(plans []Plan) Option {
	return func(c *Catalog) {
		if len(plans) > 0 {
			c.fallback = slices.Clone(plans)
		}
	}
}

// New creates a Catalog backed by source. Panics if the embedded fallback
// set cannot be loaded, since the catalog must always be able to answer.
func New(source Source, opts ...Option) *Catalog {
	if source == nil {
		panic("catalog: Source is required")
	}
	c := &Catalog{
		source:   source,
		fallback: MustFallbackPlans(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns all plans sorted by display order ascending. A source
// failure or an empty result degrades to the fallback set; List never
// returns an error for transient source problems.
func (c *Catalog) List(ctx context.Context) []Plan {
	plans, err := c.source.Load(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "plan catalog read failed, serving fallback", logger.Error(err))
		plans = nil
	}

	// Drop inconsistent plans instead of serving a broken paywall entry.
	valid := plans[:0]
	for _, p := range plans {
		if err := p.Validate(); err != nil {
			c.log.WarnContext(ctx, "skipping invalid plan", logger.PlanID(p.ID), logger.Error(err))
			continue
		}
		valid = append(valid, p)
	}

	if len(valid) == 0 {
		valid = slices.Clone(c.fallback)
	}

	slices.SortStableFunc(valid, func(a, b Plan) int {
		return a.DisplayOrder - b.DisplayOrder
	})
	return valid
}

// Get resolves a plan by ID. Returns ErrPlanNotFound when the ID is not
// present in either the remote source or the fallback set.
func (c *Catalog) Get(ctx context.Context, id string) (Plan, error) {
	for _, p := range c.List(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, ErrPlanNotFound
}
