// Package redis provides connection helpers for Redis.
//
// Connect parses the connection URL, dials with retries bounded by the
// configured timeout, and returns a ready client. Healthcheck returns a
// probe function for readiness endpoints.
package redis
