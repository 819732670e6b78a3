package server

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrInvalidRequest is returned for malformed request parameters.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound is returned when a saved word does not exist.
	ErrNotFound = errors.New("not found")
)
