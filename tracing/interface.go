package tracing

import "context"

// Tracer is the root marker of the tracing capability family. It defines no
// operations of its own; concrete capability is described by the
// ServiceTracer and TransactionalTracer contracts, which embed it.
type Tracer interface{}

// ServiceTracer defines severity-leveled tracing operations without
// transaction context, for reporting that concerns the service as a whole
// rather than one unit of work.
//
// For every operation, payload is the message or structured data to report
// (opaque to the contract), checkpointID optionally names the workflow point
// that produced it (empty when unused), and the variadic extra maps carry
// supplementary key/value context passed through to the backend.
//
// This interface is implemented by the no-op backend in this package and by
// the concrete clients in the logtracer and promtracer packages.
type ServiceTracer interface {
	Tracer

	// Info reports general service progress.
	Info(payload interface{}, checkpointID string, extra ...map[string]interface{})

	// Debug reports verbose diagnostic detail.
	Debug(payload interface{}, checkpointID string, extra ...map[string]interface{})

	// Warning reports a condition that deserves attention but is not a failure.
	Warning(payload interface{}, checkpointID string, extra ...map[string]interface{})

	// Error reports a failure affecting the current operation.
	Error(payload interface{}, checkpointID string, extra ...map[string]interface{})

	// Critical reports a failure threatening the service as a whole.
	Critical(payload interface{}, checkpointID string, extra ...map[string]interface{})
}

// TransactionalTracer defines tracing operations keyed by a transaction id
// and checkpoint id, so entries can be correlated with the logical unit of
// work that produced them.
//
// Every operation takes the context of the running unit of work. An empty
// transactionID means "resolve from the transaction carried by ctx"; see
// ResolveMain and ResolveCurrent. The tracer never raises or swallows the
// errors it is handed; it only reports them.
//
// This interface is implemented by the no-op backend in this package and by
// the concrete clients in the logtracer and promtracer packages.
type TransactionalTracer interface {
	Tracer

	// Info reports general progress of the unit of work.
	Info(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{})

	// Debug reports verbose diagnostic detail of the unit of work.
	Debug(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{})

	// Warning reports a condition that deserves attention but is not a failure.
	Warning(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{})

	// Error reports a failure affecting the unit of work.
	Error(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{})

	// Critical reports a failure threatening the whole system.
	Critical(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{})

	// FuncError reports a business-rule violation: the system worked, the
	// request could not be honored.
	FuncError(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{})

	// TechError reports an infrastructure or runtime failure, optionally
	// carrying the causing error (nil when unavailable).
	TechError(ctx context.Context, payload interface{}, transactionID, checkpointID string, err error, extra ...map[string]interface{})

	// ReportStartExternal marks the start of a call that crosses the system
	// boundary to an external dependency.
	ReportStartExternal(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{})

	// ReportEndExternal marks the end of an external call, so backends can
	// track latency and outcome of the bracketed interaction.
	ReportEndExternal(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{})
}
