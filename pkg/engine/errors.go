package engine

import "errors"

var (
	// ErrClosed is returned by announce operations after Close.
	ErrClosed = errors.New("engine: closed")

	// ErrAlreadyStarted is returned when Start is called a second time.
	ErrAlreadyStarted = errors.New("engine: already started")
)
