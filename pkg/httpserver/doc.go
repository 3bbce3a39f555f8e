// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, and structured logging via slog.
//
// Run blocks until the context is cancelled, an interrupt/TERM signal
// arrives, or the listener fails, and then drains in-flight requests within
// the shutdown deadline. Construction is done through New or NewFromConfig
// with functional options, so the caller wires an explicit handler and
// logger instead of relying on package state.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
