package cache

import "errors"

var (
	// ErrNotFound is returned when no entry exists for an id.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrReleased is returned for ids whose resource has been disposed.
	ErrReleased = errors.New("cache: entry released")

	// ErrClosed is returned by operations on a closed cache.
	ErrClosed = errors.New("cache: closed")
)
