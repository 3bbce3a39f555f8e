package quota

import (
	"context"
	"fmt"
	"time"
)

// DefaultDailyLimit is the number of free generations per calendar day.
const DefaultDailyLimit = 3

// Unlimited is reported as the remaining allowance for pro users.
const Unlimited = -1

// DayKey returns the calendar-day key for t. It is a pure function of the
// clock: UTC ISO date, independent of the host timezone.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Tracker gates free-tier usage against a daily allowance.
type Tracker struct {
	store Store
	limit int
	now   func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLimit overrides the daily allowance.
func WithLimit(limit int) Option {
	return func(t *Tracker) {
		if limit > 0 {
			t.limit = limit
		}
	}
}

// WithClock substitutes the time source. Tests use it to fix the day.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTracker creates a Tracker over the given store. Panics on a nil store
// to fail fast at wiring time.
func NewTracker(store Store, opts ...Option) *Tracker {
	if store == nil {
		panic("quota: Store is required")
	}
	t := &Tracker{
		store: store,
		limit: DefaultDailyLimit,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Limit returns the configured daily allowance.
func (t *Tracker) Limit() int { return t.limit }

// Remaining reports how many free generations are left today for key.
// Pro subjects always get Unlimited. A record from a previous day counts
// as a full allowance; the stored record is not rewritten by reads.
func (t *Tracker) Remaining(ctx context.Context, key string, isPro bool) (int, error) {
	if isPro {
		return Unlimited, nil
	}
	if key == "" {
		return 0, ErrMissingKey
	}

	usage, err := t.store.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to read usage: %w", err)
	}

	if usage.Date != DayKey(t.now()) {
		return t.limit, nil
	}
	return max(t.limit-usage.Count, 0), nil
}

// Consume records one successful generation for key. It must be called
// only after the generation succeeded, and once per generation. Pro
// subjects are a no-op. Returns ErrExhausted without writing when the
// allowance is already spent, so the counter never overcounts.
func (t *Tracker) Consume(ctx context.Context, key string, isPro bool) error {
	if isPro {
		return nil
	}
	if key == "" {
		return ErrMissingKey
	}

	usage, err := t.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read usage: %w", err)
	}

	today := DayKey(t.now())
	if usage.Date != today {
		usage = Usage{Date: today, Count: 1}
	} else {
		if usage.Count >= t.limit {
			return ErrExhausted
		}
		usage.Count++
	}

	if err := t.store.Save(ctx, key, usage); err != nil {
		return fmt.Errorf("failed to save usage: %w", err)
	}
	return nil
}
