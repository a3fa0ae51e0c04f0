package promtracer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aalemi-dev/biztrace/tracing"
)

// Level label values for the entries counter.
const (
	levelDebug    = "debug"
	levelInfo     = "info"
	levelWarning  = "warning"
	levelError    = "error"
	levelCritical = "critical"
)

// Client counts traced checkpoints as Prometheus metrics and optionally
// forwards them to another tracer.
//
// Client implements the tracing.TransactionalTracer interface.
type Client struct {
	entries           *prometheus.CounterVec
	functionalErrors  prometheus.Counter
	technicalErrors   prometheus.Counter
	externalStarted   prometheus.Counter
	externalCompleted prometheus.Counter
	externalInFlight  prometheus.Gauge

	next tracing.TransactionalTracer
}

// NewClient initializes a metric-counting tracer and registers its metrics.
//
// Parameters:
//   - cfg: Configuration for the tracer, including namespace, service label,
//     target registerer and the optional next tracer
//
// Returns:
//   - *Client: A configured tracer instance ready for use
//
// All level series of the entries counter are pre-initialized so dashboards
// see explicit zeros instead of gaps. Registration uses MustRegister and
// therefore panics when a metric of the same name is already registered.
//
// Example:
//
//	registry := prometheus.NewRegistry()
//	tracer := promtracer.NewClient(promtracer.Config{
//	    ServiceName: "checkout",
//	    Registerer:  registry,
//	})
//	tracer.Info(ctx, "order accepted", "", "checkout.accept", nil)
func NewClient(cfg Config) *Client {
	registerer := cfg.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// Wrap with service label
	if cfg.ServiceName != "" {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"service": cfg.ServiceName},
			registerer,
		)
	}

	c := &Client{
		entries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "tracer_entries_total",
				Help:      "Total traced checkpoints by level.",
			},
			[]string{"level"},
		),
		functionalErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "tracer_functional_errors_total",
			Help:      "Total checkpoints reporting business rule violations.",
		}),
		technicalErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "tracer_technical_errors_total",
			Help:      "Total checkpoints reporting infrastructure failures.",
		}),
		externalStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "tracer_external_calls_started_total",
			Help:      "Total external interactions started.",
		}),
		externalCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "tracer_external_calls_completed_total",
			Help:      "Total external interactions completed.",
		}),
		externalInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "tracer_external_calls_in_flight",
			Help:      "External interactions currently in flight.",
		}),
		next: cfg.Next,
	}

	registerer.MustRegister(
		c.entries,
		c.functionalErrors,
		c.technicalErrors,
		c.externalStarted,
		c.externalCompleted,
		c.externalInFlight,
	)

	// Pre-initialize level series
	for _, level := range []string{levelDebug, levelInfo, levelWarning, levelError, levelCritical} {
		c.entries.WithLabelValues(level)
	}

	return c
}
