// Package telemetry exports reactable channel statistics as Prometheus
// metrics.
//
// A Collector implements observable.Metrics, so it can be handed to any
// observable or to the engine through WithMetrics:
//
//	reg := prometheus.NewRegistry()
//	col, err := telemetry.NewCollector(reg)
//	if err != nil {
//		return err
//	}
//	eng := engine.New(cfg, engine.WithMetrics(col))
//	http.Handle("/metrics", col.Handler())
//
// Exported series:
//
//	enginekit_reactable_subscribers{channel}
//	enginekit_reactable_pushes_total{channel,result}
//	enginekit_reactable_deliveries_total{channel}
package telemetry
