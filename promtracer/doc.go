// Package promtracer implements the transactional tracing interface as a set
// of Prometheus metrics, optionally forwarding every checkpoint to another
// tracer.
//
// # Overview
//
// The Client counts traced checkpoints instead of (or in addition to)
// logging them. It registers the following metrics:
//
//   - tracer_entries_total{level}: counter of traced checkpoints by level
//     (debug, info, warning, error, critical)
//   - tracer_functional_errors_total: counter of business rule violations
//   - tracer_technical_errors_total: counter of infrastructure failures
//   - tracer_external_calls_started_total: counter of external interactions
//     started
//   - tracer_external_calls_completed_total: counter of external interactions
//     completed
//   - tracer_external_calls_in_flight: gauge of external interactions
//     currently running
//
// Transaction and checkpoint ids are not used as labels: their cardinality
// is unbounded. Use a log-backed tracer for per-transaction detail and this
// package for aggregate rates.
//
// # Chaining
//
// Set Config.Next to another tracing.TransactionalTracer to count and then
// forward each checkpoint unchanged. The usual pairing is a logtracer client:
//
//	logClient := logtracer.NewTransactionalClient(logCfg)
//	tracer := promtracer.NewClient(promtracer.Config{
//	    ServiceName: "checkout",
//	    Next:        logClient,
//	})
//	tracer.Info(ctx, "order accepted", "", "checkout.accept", nil)
//
// With a nil Next the client only counts.
//
// # FX Module Integration
//
//	app := fx.New(
//	    promtracer.FXModule,
//	    fx.Supply(promtracer.Config{ServiceName: "checkout"}),
//	    fx.Invoke(run),
//	)
//
// The module annotates the client as tracing.TransactionalTracer. Include
// exactly one module that provides that interface, or chain them through
// Config.Next instead.
//
// # Thread Safety
//
// The Client is safe for concurrent use. Prometheus collectors handle their
// own synchronization, and the client holds no other mutable state.
package promtracer
