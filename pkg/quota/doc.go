// Package quota tracks the daily free-tier generation allowance.
//
// Usage is a single {date, count} record per subject key, reset implicitly
// when the stored date no longer matches the current day. The counter is
// advisory: it gates free usage but is not a security boundary, and pro
// users bypass it entirely (Remaining reports Unlimited, Consume is a
// no-op). Callers must only Consume after a successful generation so a
// failed generation never burns quota.
//
// The day key is a pure function of the injected clock in UTC, so tests
// can fix the clock and day boundaries are timezone-independent.
package quota
