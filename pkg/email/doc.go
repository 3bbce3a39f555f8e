// Package email sends transactional email through Postmark.
//
// The EmailSender interface keeps callers decoupled from the delivery
// backend: production wiring uses the Postmark client, tests and local
// development use NoopSender. The backend sends a single kind of email, the
// payment receipt dispatched after a successful payment notification.
package email
