// Package api exposes the backend over HTTP for the mobile client and the
// payment provider.
//
// The surface is a flat JSON API without sessions: the client identifies
// itself by user ID in the request. Handlers translate between HTTP and
// the domain services; all business rules live in pkg.
//
// Routes:
//
//	GET  /health                  liveness and dependency status
//	GET  /plans                   purchasable plan catalog
//	POST /generate                content generation, quota gated
//	GET  /history/{userId}        recent generations, newest first
//	POST /payments                create a hosted payment session
//	GET  /payments/{id}/qr        QR code of the checkout link
//	POST /payments/webhook        provider status notifications
//	GET  /subscriptions/{userId}  resolved entitlement
//	GET  /quota/{userId}          remaining free generations today
package api
