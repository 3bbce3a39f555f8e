// Package catalog resolves subscription plan identifiers to price,
// duration, and display metadata.
//
// Plans are loaded from a remote source (the paymentPlans collection in
// the document store) with a built-in static fallback: a transient read
// failure or an empty collection degrades to the fallback set instead of
// erroring, so the paywall always has something to show. A plan is
// immutable once a payment session references it.
//
//	cat := catalog.New(catalog.NewMongoSource(db), catalog.WithLogger(log))
//	plans, _ := cat.List(ctx)
//	plan, err := cat.Get(ctx, "plan_monthly")
package catalog
