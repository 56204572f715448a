package diag

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("failed to start diagnostics server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown diagnostics server gracefully")
	// ErrAlreadyRunning is joined with ErrStart when Run is called twice.
	ErrAlreadyRunning = errors.New("diagnostics server already running")
	// ErrNotReady is reported by the readiness probe before initialization.
	ErrNotReady = errors.New("engine is not initialized")
)
