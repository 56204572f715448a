// Package diag serves engine diagnostics over HTTP.
//
// NewHandler builds a chi router with these routes:
//
//	GET /metrics   Prometheus exposition (when a metrics handler is given)
//	GET /healthz   liveness, always "ALIVE"
//	GET /readyz    "READY" once the GL context is initialized, 503 before
//	GET /channels  JSON map of channel name to subscriber count
//
// Server wraps http.Server with graceful shutdown. Run blocks until the
// context is cancelled, SIGINT/SIGTERM arrives or Shutdown is called:
//
//	srv := diag.New(diag.WithAddr(":9090"), diag.WithLogger(log))
//	h := diag.NewHandler(eng, diag.WithMetricsHandler(col.Handler()))
//	if err := srv.Run(ctx, h); err != nil {
//		log.Error("diagnostics server failed", logger.Error(err))
//	}
//
// Errors from Run are wrapped with ErrStart and errors from Shutdown with
// ErrShutdown.
package diag
