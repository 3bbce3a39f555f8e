package quota_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialynx/backend/pkg/quota"
)

var day = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func newTracker(store quota.Store, at time.Time) *quota.Tracker {
	return quota.NewTracker(store, quota.WithClock(func() time.Time { return at }))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2025-06-15", quota.DayKey(day))

	// The key is computed in UTC regardless of the input location.
	loc := time.FixedZone("UTC+5", 5*3600)
	late := time.Date(2025, 6, 16, 3, 0, 0, 0, loc) // still 2025-06-15 UTC
	assert.Equal(t, "2025-06-15", quota.DayKey(late))
}

func TestTrackerRemaining(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh subject has full allowance", func(t *testing.T) {
		tr := newTracker(quota.NewMemoryStore(), day)
		remaining, err := tr.Remaining(ctx, "device-1", false)
		require.NoError(t, err)
		assert.Equal(t, quota.DefaultDailyLimit, remaining)
	})

	t.Run("pro is unlimited", func(t *testing.T) {
		tr := newTracker(quota.NewMemoryStore(), day)
		remaining, err := tr.Remaining(ctx, "device-1", true)
		require.NoError(t, err)
		assert.Equal(t, quota.Unlimited, remaining)
	})

	t.Run("yesterday's exhausted counter resets today", func(t *testing.T) {
		store := quota.NewMemoryStore()
		yesterday := newTracker(store, day.AddDate(0, 0, -1))
		for range 3 {
			require.NoError(t, yesterday.Consume(ctx, "device-1", false))
		}

		today := newTracker(store, day)
		remaining, err := today.Remaining(ctx, "device-1", false)
		require.NoError(t, err)
		assert.Equal(t, 3, remaining)
	})

	t.Run("missing key", func(t *testing.T) {
		tr := newTracker(quota.NewMemoryStore(), day)
		_, err := tr.Remaining(ctx, "", false)
		assert.ErrorIs(t, err, quota.ErrMissingKey)
	})
}

func TestTrackerConsume(t *testing.T) {
	ctx := context.Background()

	t.Run("remaining decreases monotonically and never goes negative", func(t *testing.T) {
		tr := newTracker(quota.NewMemoryStore(), day)

		for i := 1; i <= 3; i++ {
			require.NoError(t, tr.Consume(ctx, "device-1", false))
			remaining, err := tr.Remaining(ctx, "device-1", false)
			require.NoError(t, err)
			assert.Equal(t, 3-i, remaining)
		}

		// Allowance spent: further consumes are rejected, remaining stays 0.
		assert.ErrorIs(t, tr.Consume(ctx, "device-1", false), quota.ErrExhausted)
		remaining, err := tr.Remaining(ctx, "device-1", false)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("pro consume changes nothing", func(t *testing.T) {
		store := quota.NewMemoryStore()
		tr := newTracker(store, day)

		require.NoError(t, tr.Consume(ctx, "device-1", true))

		usage, err := store.Get(ctx, "device-1")
		require.NoError(t, err)
		assert.Zero(t, usage.Count)
		assert.Empty(t, usage.Date)
	})

	t.Run("day rollover resets count to one", func(t *testing.T) {
		store := quota.NewMemoryStore()
		yesterday := newTracker(store, day.AddDate(0, 0, -1))
		require.NoError(t, yesterday.Consume(ctx, "device-1", false))
		require.NoError(t, yesterday.Consume(ctx, "device-1", false))

		today := newTracker(store, day)
		require.NoError(t, today.Consume(ctx, "device-1", false))

		usage, err := store.Get(ctx, "device-1")
		require.NoError(t, err)
		assert.Equal(t, quota.Usage{Date: "2025-06-15", Count: 1}, usage)
	})

	t.Run("custom limit", func(t *testing.T) {
		tr := quota.NewTracker(quota.NewMemoryStore(),
			quota.WithLimit(1),
			quota.WithClock(func() time.Time { return day }))

		require.NoError(t, tr.Consume(ctx, "device-1", false))
		assert.ErrorIs(t, tr.Consume(ctx, "device-1", false), quota.ErrExhausted)
	})
}
