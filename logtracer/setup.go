package logtracer

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceClient is a wrapper around Uber's Zap logger that emits
// service-level checkpoints.
//
// ServiceClient implements the tracing.ServiceTracer interface.
type ServiceClient struct {
	// Zap is the underlying zap.Logger instance.
	// This is exposed to allow direct access to Zap-specific functionality
	// when needed, but most tracing should go through the wrapper methods.
	Zap *zap.Logger
}

// TransactionalClient is a wrapper around Uber's Zap logger that emits
// checkpoints tied to a business transaction.
//
// TransactionalClient implements the tracing.TransactionalTracer interface.
type TransactionalClient struct {
	// Zap is the underlying zap.Logger instance.
	// This is exposed to allow direct access to Zap-specific functionality
	// when needed, but most tracing should go through the wrapper methods.
	Zap *zap.Logger

	// tracingEnabled indicates whether OpenTelemetry integration is enabled.
	// When true, checkpoint methods will automatically extract trace context
	// and include trace/span IDs in log entries.
	tracingEnabled bool

	// useMain indicates which transaction of the context fills an empty
	// transaction id: the root transaction when true, the innermost one
	// when false.
	useMain bool
}

// newZapLogger initializes a Zap logger based on configuration. Both client
// constructors share it.
//
// The logger is configured with:
//   - JSON encoding for structured logging
//   - ISO8601 timestamp format
//   - Capital letter level encoding (e.g., "INFO", "ERROR") without color codes
//   - Process ID and service name as default fields
//   - Caller information (file and line) included in log entries
//   - Configurable caller skip depth for wrapper scenarios
//   - Output directed to stderr
//
// Critical checkpoints map to Zap's DPanic level, which logs at high severity
// without panicking in production configurations like this one.
//
// If initialization fails, the function will call log.Fatal to terminate the
// application.
func newZapLogger(cfg Config) *zap.Logger {

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel

	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	case Critical:
		logLevel = zap.DPanicLevel
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(logLevel),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	// Default to 1 if not set, which works for direct usage of the clients
	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	logger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(callerSkip))

	if err != nil {
		log.Fatal(err)
	}

	return logger
}

// NewServiceClient initializes and returns a new service-level tracer backed
// by a configured Zap logger.
//
// Parameters:
//   - cfg: Configuration for the tracer, including level and caller skip
//
// Returns:
//   - *ServiceClient: A configured tracer instance ready for use
//
// Example:
//
//	cfg := logtracer.Config{
//	    Level:       logtracer.Info,
//	    ServiceName: "checkout",
//	}
//	svc := logtracer.NewServiceClient(cfg)
//	svc.Info("worker pool ready", "startup.workers", nil)
func NewServiceClient(cfg Config) *ServiceClient {
	return &ServiceClient{
		Zap: newZapLogger(cfg),
	}
}

// NewTransactionalClient initializes and returns a new transaction-aware
// tracer backed by a configured Zap logger.
//
// Parameters:
//   - cfg: Configuration for the tracer, including level, caller skip,
//     OpenTelemetry integration and transaction resolution mode
//
// Returns:
//   - *TransactionalClient: A configured tracer instance ready for use
//
// Example:
//
//	cfg := logtracer.Config{
//	    Level:       logtracer.Info,
//	    ServiceName: "checkout",
//	}
//	txn := logtracer.NewTransactionalClient(cfg)
//	txn.Info(ctx, "order accepted", "", "checkout.accept", nil)
func NewTransactionalClient(cfg Config) *TransactionalClient {
	return &TransactionalClient{
		Zap:            newZapLogger(cfg),
		tracingEnabled: cfg.EnableTracing,
		useMain:        cfg.UseMainTransaction,
	}
}
