package observable

import "log/slog"

// Metrics receives channel statistics. Implementations must be cheap;
// they are called on every push.
type Metrics interface {
	// SubscribersChanged reports the subscriber count after a change.
	SubscribersChanged(channel string, subscribers int)

	// Delivered reports a finished push: how many observers processed the
	// value and the delivery error, if any.
	Delivered(channel string, observers int, err error)
}

type noopMetrics struct{}

func (noopMetrics) SubscribersChanged(string, int) {}
func (noopMetrics) Delivered(string, int, error)   {}

// Option configures an Observable.
type Option func(*config)

type config struct {
	name    string
	logger  *slog.Logger
	metrics Metrics
}

// WithName sets the channel name used in logs, metrics and errors.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger supplies a logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics supplies a metrics sink. Nil sinks are ignored.
func WithMetrics(m Metrics) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}
