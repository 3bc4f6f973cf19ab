package httpserver

import "errors"

var (
	// ErrStart indicates that the server failed to listen or serve.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown did not complete in time.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)
