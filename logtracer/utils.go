package logtracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/aalemi-dev/biztrace/tracing"
)

// payloadMessage renders a checkpoint payload as the log message.
// Payloads are untyped: callers pass strings, errors, or any domain value
// they want recorded.
//
// The rendering rules are:
//   - nil: empty message
//   - string: used as-is
//   - error: the error text
//   - fmt.Stringer: the String() result
//   - anything else: fmt's default %v formatting
func payloadMessage(payload interface{}) string {
	switch p := payload.(type) {
	case nil:
		return ""
	case string:
		return p
	case error:
		return p.Error()
	case fmt.Stringer:
		return p.String()
	default:
		return fmt.Sprintf("%v", p)
	}
}

// convertToZapFields converts an error and additional field maps into Zap's
// structured logging fields. This internal helper transforms the simplified
// field maps used by the tracer clients into the zap.Field format required
// by the underlying Zap logger.
//
// The function handles both error objects and arbitrary key-value pairs from
// the extra maps. If multiple maps contain the same key, the later maps will
// override earlier ones.
func convertToZapFields(err error, extra ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	// Iterate through optional field maps and convert them into Zap fields.
	for _, fieldMap := range extra {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

// extractTracingFields extracts OpenTelemetry information from the given
// context and returns it as Zap fields. This method is used internally to
// automatically add trace correlation data to checkpoints when tracing
// integration is enabled.
//
// If the context contains an active span, this method will extract:
//   - trace_id: The trace ID as a string
//   - span_id: The span ID as a string
//
// If no span context is found or tracing is disabled, returns an empty slice.
func (c *TransactionalClient) extractTracingFields(ctx context.Context) []zap.Field {
	if !c.tracingEnabled || ctx == nil {
		return nil
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}

	spanContext := span.SpanContext()
	if !spanContext.IsValid() {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", spanContext.TraceID().String()),
		zap.String("span_id", spanContext.SpanID().String()),
	}
}

// checkpointFields assembles the structured fields of a service-level
// checkpoint: the checkpoint id followed by any extra fields.
func (c *ServiceClient) checkpointFields(checkpointID string, extra ...map[string]interface{}) []zap.Field {
	fields := []zap.Field{
		zap.String("checkpoint_id", checkpointID),
	}
	return append(fields, convertToZapFields(nil, extra...)...)
}

// checkpointFields assembles the structured fields of a transactional
// checkpoint: the resolved transaction identity, the optional error, any
// extra fields, and trace correlation data when enabled.
//
// An empty transactionID is filled from the transaction carried by ctx,
// against the root transaction when the client was configured with
// UseMainTransaction and against the innermost one otherwise. Both ids are
// always emitted, as empty strings when nothing resolves.
func (c *TransactionalClient) checkpointFields(ctx context.Context, transactionID, checkpointID string, err error, extra ...map[string]interface{}) []zap.Field {
	var ref tracing.Ref
	if c.useMain {
		ref = tracing.ResolveMain(ctx, transactionID, checkpointID)
	} else {
		ref = tracing.ResolveCurrent(ctx, transactionID, checkpointID)
	}

	fields := []zap.Field{
		zap.String("transaction_id", ref.TransactionID),
		zap.String("checkpoint_id", ref.CheckpointID),
	}
	fields = append(fields, convertToZapFields(err, extra...)...)
	fields = append(fields, c.extractTracingFields(ctx)...)
	return fields
}
