// Package mongo provides connection helpers for the MongoDB document store.
//
// New dials the server with pooling and retry settings taken from Config,
// retrying the initial connect a configurable number of times so services
// survive slow database startup in container environments. Healthcheck
// returns a probe function for readiness endpoints.
package mongo
