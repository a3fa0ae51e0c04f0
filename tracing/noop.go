package tracing

import "context"

// NoOpServiceTracer is a no-op implementation of ServiceTracer.
// It discards every call. This can be useful for testing or as a default
// value when no backend is configured.
type NoOpServiceTracer struct{}

// Info does nothing (no-op).
func (n *NoOpServiceTracer) Info(payload interface{}, checkpointID string, extra ...map[string]interface{}) {
}

// Debug does nothing (no-op).
func (n *NoOpServiceTracer) Debug(payload interface{}, checkpointID string, extra ...map[string]interface{}) {
}

// Warning does nothing (no-op).
func (n *NoOpServiceTracer) Warning(payload interface{}, checkpointID string, extra ...map[string]interface{}) {
}

// Error does nothing (no-op).
func (n *NoOpServiceTracer) Error(payload interface{}, checkpointID string, extra ...map[string]interface{}) {
}

// Critical does nothing (no-op).
func (n *NoOpServiceTracer) Critical(payload interface{}, checkpointID string, extra ...map[string]interface{}) {
}

// NewNoOpServiceTracer creates a new NoOpServiceTracer.
func NewNoOpServiceTracer() ServiceTracer {
	return &NoOpServiceTracer{}
}

// NoOpTransactionalTracer is a no-op implementation of TransactionalTracer.
// It discards every call.
type NoOpTransactionalTracer struct{}

// Info does nothing (no-op).
func (n *NoOpTransactionalTracer) Info(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
}

// Debug does nothing (no-op).
func (n *NoOpTransactionalTracer) Debug(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
}

// Warning does nothing (no-op).
func (n *NoOpTransactionalTracer) Warning(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
}

// Error does nothing (no-op).
func (n *NoOpTransactionalTracer) Error(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
}

// Critical does nothing (no-op).
func (n *NoOpTransactionalTracer) Critical(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
}

// FuncError does nothing (no-op).
func (n *NoOpTransactionalTracer) FuncError(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
}

// TechError does nothing (no-op).
func (n *NoOpTransactionalTracer) TechError(ctx context.Context, payload interface{}, transactionID, checkpointID string, err error, extra ...map[string]interface{}) {
}

// ReportStartExternal does nothing (no-op).
func (n *NoOpTransactionalTracer) ReportStartExternal(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
}

// ReportEndExternal does nothing (no-op).
func (n *NoOpTransactionalTracer) ReportEndExternal(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
}

// NewNoOpTransactionalTracer creates a new NoOpTransactionalTracer.
func NewNoOpTransactionalTracer() TransactionalTracer {
	return &NoOpTransactionalTracer{}
}
