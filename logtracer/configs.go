package logtracer

// Log level constants that define the available minimum levels for emitted
// checkpoints. These string constants are used in configuration to set the
// desired level.
const (
	// Debug represents the most verbose level, intended for development and
	// troubleshooting. When the tracer is set to Debug level, all checkpoints
	// (Debug, Info, Warning, Error, Critical) will be output.
	Debug = "debug"

	// Info represents the standard level for general operational checkpoints.
	// When the tracer is set to Info level, Info, Warning, Error and Critical
	// checkpoints will be output, but Debug checkpoints will be suppressed.
	Info = "info"

	// Warning represents the level for potential issues that aren't errors.
	// When the tracer is set to Warning level, only Warning, Error and
	// Critical checkpoints will be output.
	Warning = "warning"

	// Error represents the level for error checkpoints. When the tracer is
	// set to Error level, only Error and Critical checkpoints will be output.
	Error = "error"

	// Critical represents the level for events demanding immediate attention.
	// When the tracer is set to Critical level, only Critical checkpoints
	// will be output.
	Critical = "critical"
)

// Config defines the configuration structure for the log-backed tracers.
// It contains settings that control the behavior of both clients.
type Config struct {
	// Level determines the minimum checkpoint level that will be output.
	// Valid values are:
	//   - "debug": Most verbose, shows all checkpoints
	//   - "info": Shows info, warning, error and critical checkpoints
	//   - "warning": Shows only warning, error and critical checkpoints
	//   - "error": Shows only error and critical checkpoints
	//   - "critical": Shows only critical checkpoints
	//
	// If not set or set to an unknown value, defaults to "info".
	Level string

	// ServiceName is the name of the service emitting checkpoints.
	// This value is used to populate the "service" field in log entries.
	ServiceName string

	// EnableTracing controls whether OpenTelemetry integration is enabled
	// for transactional checkpoints. When set to true, TransactionalClient
	// will automatically extract trace and span information from context and
	// include it in log entries. This provides correlation between traced
	// checkpoints and distributed traces.
	//
	// When tracing is enabled, the following fields are automatically added
	// to log entries:
	//   - "trace_id": The trace ID from the current span context
	//   - "span_id": The span ID from the current span context
	EnableTracing bool

	// UseMainTransaction controls which transaction of the context fills an
	// empty transaction id. When false (the default), TransactionalClient
	// resolves against the innermost transaction of the context. When true,
	// it resolves against the root transaction, so every checkpoint of a
	// nested flow is attributed to the outermost business operation.
	UseMainTransaction bool

	// CallerSkip controls the number of stack frames to skip when reporting
	// the caller. This is useful when you have wrapper layers around the
	// tracer clients.
	//
	// Guidelines for setting CallerSkip:
	//   - 1 (default): Use when calling the clients directly from your code
	//   - 2: Use when you have one additional wrapper layer
	//   - 3+: Use when you have multiple wrapper layers
	//
	// If not set or set to 0, defaults to 1.
	CallerSkip int
}
