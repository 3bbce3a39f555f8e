// Package entitlement persists per-user subscription state and resolves
// the effective access level (free vs pro).
//
// Expiry is enforced at read time: a stored "pro" record whose expiry has
// passed is reported as free without rewriting the record, so no
// background job is needed. Writes happen only through Grant, which is
// called by the payment webhook processor on a successful payment and
// always recomputes the expiry as now + plan duration. Re-processing the
// same notification therefore converges instead of extending the
// entitlement twice.
package entitlement
