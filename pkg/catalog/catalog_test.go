package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialynx/backend/pkg/catalog"
)

type failingSource struct{ err error }

func (s failingSource) Load(context.Context) ([]catalog.Plan, error) { return nil, s.err }

func testPlans() []catalog.Plan {
	return []catalog.Plan{
		{ID: "plan_yearly", Title: "Year", PriceMinorUnits: 199900, Currency: "RUB", DurationDays: 365, DisplayOrder: 3},
		{ID: "plan_monthly", Title: "Month", PriceMinorUnits: 19900, Currency: "RUB", DurationDays: 30, DisplayOrder: 1},
		{ID: "plan_quarterly", Title: "Quarter", PriceMinorUnits: 49900, Currency: "RUB", DurationDays: 90, DisplayOrder: 2},
	}
}

func TestCatalogList(t *testing.T) {
	ctx := context.Background()

	t.Run("sorted by display order", func(t *testing.T) {
		cat := catalog.New(catalog.NewInMemSource(testPlans()...))

		plans := cat.List(ctx)
		require.Len(t, plans, 3)
		assert.Equal(t, "plan_monthly", plans[0].ID)
		assert.Equal(t, "plan_quarterly", plans[1].ID)
		assert.Equal(t, "plan_yearly", plans[2].ID)
	})

	t.Run("source failure degrades to fallback", func(t *testing.T) {
		cat := catalog.New(failingSource{err: errors.New("connection reset")})

		plans := cat.List(ctx)
		require.NotEmpty(t, plans)
		assert.GreaterOrEqual(t, len(plans), 3)
	})

	t.Run("empty source degrades to fallback", func(t *testing.T) {
		cat := catalog.New(catalog.NewInMemSource())

		plans := cat.List(ctx)
		assert.GreaterOrEqual(t, len(plans), 3)
	})

	t.Run("invalid plans are skipped", func(t *testing.T) {
		broken := catalog.Plan{ID: "plan_broken", PriceMinorUnits: -1, Currency: "RUB", DurationDays: 30}
		valid := testPlans()[0]
		cat := catalog.New(catalog.NewInMemSource(broken, valid))

		plans := cat.List(ctx)
		require.Len(t, plans, 1)
		assert.Equal(t, valid.ID, plans[0].ID)
	})
}

func TestCatalogGet(t *testing.T) {
	ctx := context.Background()
	cat := catalog.New(catalog.NewInMemSource(testPlans()...))

	t.Run("known plan", func(t *testing.T) {
		plan, err := cat.Get(ctx, "plan_monthly")
		require.NoError(t, err)
		assert.Equal(t, int64(19900), plan.PriceMinorUnits)
		assert.Equal(t, 30, plan.DurationDays)
	})

	t.Run("unknown plan", func(t *testing.T) {
		_, err := cat.Get(ctx, "plan_lifetime")
		assert.ErrorIs(t, err, catalog.ErrPlanNotFound)
	})
}

func TestFallbackPlans(t *testing.T) {
	plans, err := catalog.FallbackPlans()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(plans), 3)

	// Every valid plan id must resolve with positive price and duration.
	for _, p := range plans {
		assert.NoError(t, p.Validate())
		assert.Positive(t, p.PriceMinorUnits, p.ID)
		assert.Positive(t, p.DurationDays, p.ID)
		assert.Equal(t, "RUB", p.Currency, p.ID)
	}
}
