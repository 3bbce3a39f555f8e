// Package payment coordinates the paid-subscription purchase flow: it
// creates hosted payment sessions with the payment provider, records them
// locally, and processes the provider's asynchronous status notifications.
//
// The flow is split across two trust boundaries. CreateSession runs on
// behalf of an authenticated user: it resolves the plan, asks the provider
// for a hosted checkout session with a fresh idempotency key, and persists
// a pending session keyed by the provider's payment ID. HandleNotification
// runs on behalf of the provider, which delivers status events at least
// once and in no particular order; processing is a merge-based, idempotent
// upsert, and a successful payment grants the entitlement with an expiry
// recomputed from the processing time, so duplicate deliveries converge.
//
// Sessions are never deleted - the collection doubles as an audit trail of
// every payment attempt.
package payment
