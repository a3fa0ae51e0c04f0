package promtracer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aalemi-dev/biztrace/tracing"
)

// Config defines the configuration structure for the metric-counting tracer.
type Config struct {
	// Namespace is prepended to every metric name, separated by an
	// underscore.
	//
	// Example:
	//   Namespace: "checkout"
	//   → metric "checkout_tracer_entries_total"
	//
	// Leave empty for unprefixed names.
	Namespace string

	// ServiceName identifies the service emitting checkpoints.
	// When set, every metric carries a constant label service=<ServiceName>,
	// which helps distinguish metrics between services in multi-tenant
	// deployments. Leave empty to skip the label.
	ServiceName string

	// Registerer is the Prometheus registerer the client registers its
	// metrics with. When nil, prometheus.DefaultRegisterer is used.
	//
	// Registration happens once in NewClient and panics on conflicts, so a
	// process must not construct two clients against the same registerer
	// with the same Namespace.
	Registerer prometheus.Registerer

	// Next is the tracer every checkpoint is forwarded to after counting.
	// When nil, the client only counts.
	Next tracing.TransactionalTracer
}
