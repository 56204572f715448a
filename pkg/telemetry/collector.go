package telemetry

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "enginekit"
	subsystem = "reactable"

	resultOK    = "ok"
	resultError = "error"
)

// ErrNilRegisterer is returned by NewCollector when no registerer is given.
var ErrNilRegisterer = errors.New("telemetry: nil prometheus registerer")

// Collector records channel activity into Prometheus vectors.
type Collector struct {
	subscribers *prometheus.GaugeVec
	pushes      *prometheus.CounterVec
	deliveries  *prometheus.CounterVec
	gatherer    prometheus.Gatherer
}

// NewCollector creates the metric vectors and registers them with reg.
// When reg is also a prometheus.Gatherer, Handler serves from it;
// otherwise Handler serves the default gatherer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}

	c := &Collector{
		subscribers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "subscribers",
				Help:      "Current number of observers subscribed to a channel",
			},
			[]string{"channel"},
		),
		pushes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "pushes_total",
				Help:      "Total pushes per channel by result",
			},
			[]string{"channel", "result"},
		),
		deliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "deliveries_total",
				Help:      "Total values processed by observers",
			},
			[]string{"channel"},
		),
		gatherer: prometheus.DefaultGatherer,
	}

	for _, col := range []prometheus.Collector{c.subscribers, c.pushes, c.deliveries} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		c.gatherer = g
	}
	return c, nil
}

// MustNewCollector is like NewCollector but panics on error.
func MustNewCollector(reg prometheus.Registerer) *Collector {
	c, err := NewCollector(reg)
	if err != nil {
		panic(err)
	}
	return c
}

// SubscribersChanged sets the subscriber gauge for channel.
func (c *Collector) SubscribersChanged(channel string, subscribers int) {
	c.subscribers.WithLabelValues(channel).Set(float64(subscribers))
}

// Delivered counts one push and the observers that processed it.
func (c *Collector) Delivered(channel string, observers int, err error) {
	result := resultOK
	if err != nil {
		result = resultError
	}
	c.pushes.WithLabelValues(channel, result).Inc()
	if observers > 0 {
		c.deliveries.WithLabelValues(channel).Add(float64(observers))
	}
}

// Handler serves the registry the collector was registered with.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
