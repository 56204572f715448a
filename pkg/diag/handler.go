package diag

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/enginekit/pkg/logger"
)

// Source exposes the engine state the handlers report on.
type Source interface {
	// Initialized reports whether the GL context has been initialized.
	Initialized() bool
	// Stats returns the subscriber count per channel.
	Stats() map[string]int
}

// HandlerOption configures NewHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	metrics http.Handler
	logger  *slog.Logger
}

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) HandlerOption {
	return func(c *handlerConfig) { c.metrics = h }
}

// WithHandlerLogger sets the logger used to report failed probes.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(c *handlerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewHandler returns the diagnostics router for src.
func NewHandler(src Source, opts ...HandlerOption) http.Handler {
	cfg := &handlerConfig{logger: logger.Noop()}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Get("/healthz", liveness)
	r.Get("/readyz", readiness(src, cfg.logger))
	r.Get("/channels", channels(src, cfg.logger))
	if cfg.metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.metrics)
	}
	return r
}

func liveness(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func readiness(src Source, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !src.Initialized() {
			log.DebugContext(r.Context(), "readiness check failed", logger.Error(ErrNotReady))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}

func channels(src Source, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(src.Stats()); err != nil {
			log.ErrorContext(r.Context(), "failed to encode channel stats", logger.Error(err))
		}
	}
}
