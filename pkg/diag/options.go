package diag

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures the diagnostics server.
type Option func(*config)

// WithAddr sets the listen address. Port 0 picks a free port; Addr reports
// the bound address once Run has started.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("diag: empty listen address")
	}
	return func(c *config) { c.addr = addr }
}

// WithReadTimeout bounds reading a whole request.
func WithReadTimeout(d time.Duration) Option {
	mustPositive("read timeout", d)
	return func(c *config) { c.readTimeout = d }
}

// WithWriteTimeout bounds writing a response.
func WithWriteTimeout(d time.Duration) Option {
	mustPositive("write timeout", d)
	return func(c *config) { c.writeTimeout = d }
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("shutdown timeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithServer serves through srv. Timeouts already set on it win over the
// options above; its Handler is replaced.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("diag: nil http.Server")
	}
	return func(c *config) { c.server = srv }
}

// WithLogger supplies a logger. Nil means discard.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// OnStart registers a callback run with the bound address once the server
// accepts connections.
func OnStart(fn func(addr string)) Option {
	if fn == nil {
		panic("diag: nil start hook")
	}
	return func(c *config) { c.onStart = append(c.onStart, fn) }
}

// OnStop registers a callback run after the server has shut down.
func OnStop(fn func()) Option {
	if fn == nil {
		panic("diag: nil stop hook")
	}
	return func(c *config) { c.onStop = append(c.onStop, fn) }
}

func mustPositive(name string, d time.Duration) {
	if d <= 0 {
		panic("diag: " + name + " must be > 0")
	}
}
