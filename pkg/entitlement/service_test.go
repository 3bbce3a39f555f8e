package entitlement_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialynx/backend/pkg/entitlement"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestServiceStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("absent record resolves to free", func(t *testing.T) {
		svc := entitlement.NewService(entitlement.NewMemoryStore(), entitlement.WithClock(fixedClock(now)))

		ent, err := svc.Status(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, entitlement.StatusFree, ent.Status)
		assert.False(t, ent.IsPro())
	})

	t.Run("active pro resolves verbatim", func(t *testing.T) {
		store := entitlement.NewMemoryStore()
		svc := entitlement.NewService(store, entitlement.WithClock(fixedClock(now)))

		_, err := svc.Grant(ctx, "u1", "plan_monthly", 30)
		require.NoError(t, err)

		ent, err := svc.Status(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, entitlement.StatusPro, ent.Status)
		assert.Equal(t, "plan_monthly", ent.PlanID)
		require.NotNil(t, ent.ExpiresAt)
		assert.Equal(t, now.AddDate(0, 0, 30), *ent.ExpiresAt)
	})

	t.Run("expired pro resolves to free", func(t *testing.T) {
		store := entitlement.NewMemoryStore()
		granted := entitlement.NewService(store, entitlement.WithClock(fixedClock(now.AddDate(0, 0, -31))))
		_, err := granted.Grant(ctx, "u1", "plan_monthly", 30)
		require.NoError(t, err)

		svc := entitlement.NewService(store, entitlement.WithClock(fixedClock(now)))
		ent, err := svc.Status(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, entitlement.StatusFree, ent.Status)
	})

	t.Run("expiry one second in the past is free", func(t *testing.T) {
		store := entitlement.NewMemoryStore()
		status := entitlement.StatusPro
		expires := now.Add(-time.Second)
		require.NoError(t, store.Merge(ctx, "u1", entitlement.Patch{
			Status:    &status,
			ExpiresAt: &expires,
		}))

		svc := entitlement.NewService(store, entitlement.WithClock(fixedClock(now)))
		ent, err := svc.Status(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, entitlement.StatusFree, ent.Status)
	})

	t.Run("read does not rewrite the record", func(t *testing.T) {
		store := entitlement.NewMemoryStore()
		status := entitlement.StatusPro
		expires := now.Add(-time.Hour)
		require.NoError(t, store.Merge(ctx, "u1", entitlement.Patch{Status: &status, ExpiresAt: &expires}))

		svc := entitlement.NewService(store, entitlement.WithClock(fixedClock(now)))
		_, err := svc.Status(ctx, "u1")
		require.NoError(t, err)

		sub, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, entitlement.StatusPro, sub.Status)
	})

	t.Run("missing user id", func(t *testing.T) {
		svc := entitlement.NewService(entitlement.NewMemoryStore())
		_, err := svc.Status(ctx, "")
		assert.ErrorIs(t, err, entitlement.ErrMissingUserID)
	})
}

func TestServiceGrant(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("expiry computed from grant time", func(t *testing.T) {
		svc := entitlement.NewService(entitlement.NewMemoryStore(), entitlement.WithClock(fixedClock(now)))

		ent, err := svc.Grant(ctx, "u1", "plan_quarterly", 90)
		require.NoError(t, err)
		require.NotNil(t, ent.ExpiresAt)
		assert.Equal(t, now.AddDate(0, 0, 90), *ent.ExpiresAt)
	})

	t.Run("regrant resets instead of extending", func(t *testing.T) {
		store := entitlement.NewMemoryStore()
		svc := entitlement.NewService(store, entitlement.WithClock(fixedClock(now)))

		first, err := svc.Grant(ctx, "u1", "plan_monthly", 30)
		require.NoError(t, err)
		second, err := svc.Grant(ctx, "u1", "plan_monthly", 30)
		require.NoError(t, err)

		assert.Equal(t, *first.ExpiresAt, *second.ExpiresAt)
	})

	t.Run("merge preserves unrelated fields", func(t *testing.T) {
		store := entitlement.NewMemoryStore()
		plan := "plan_yearly"
		require.NoError(t, store.Merge(ctx, "u1", entitlement.Patch{PlanID: &plan}))

		status := entitlement.StatusPro
		require.NoError(t, store.Merge(ctx, "u1", entitlement.Patch{Status: &status}))

		sub, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "plan_yearly", sub.PlanID)
		assert.Equal(t, entitlement.StatusPro, sub.Status)
	})

	t.Run("non-positive duration rejected", func(t *testing.T) {
		svc := entitlement.NewService(entitlement.NewMemoryStore())
		_, err := svc.Grant(ctx, "u1", "plan_monthly", 0)
		assert.ErrorIs(t, err, entitlement.ErrInvalidDuration)
	})
}
