package engine

import (
	"log/slog"

	"github.com/dmitrymomot/enginekit/pkg/observable"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics observable.Metrics
}

// WithLogger sets the logger shared by the engine and its channels.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics reports channel activity to m.
func WithMetrics(m observable.Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
