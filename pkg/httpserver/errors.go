package httpserver

import "errors"

var (
	// ErrStart wraps failures to start the listener.
	ErrStart = errors.New("failed to start http server")
	// ErrShutdown wraps failures to shut the server down gracefully.
	ErrShutdown = errors.New("failed to shut down http server")
)
