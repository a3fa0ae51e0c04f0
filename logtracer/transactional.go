package logtracer

import (
	"context"

	"go.uber.org/zap"
)

// Info records an informational checkpoint within a transaction. Use Info
// for general progress of the business flow.
//
// Parameters:
//   - ctx: The context carrying the transaction and optional trace information
//   - payload: The checkpoint payload, rendered as the log message
//   - transactionID: Identifier of the transaction, or "" to resolve it from ctx
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
//
// Example:
//
//	txn.Info(ctx, "order accepted", "", "checkout.accept", map[string]interface{}{
//	    "order_id": orderID,
//	})
func (c *TransactionalClient) Info(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.Zap.Info(payloadMessage(payload), c.checkpointFields(ctx, transactionID, checkpointID, nil, extra...)...)
}

// Debug records a debug-level checkpoint within a transaction, useful for
// development and troubleshooting.
//
// Parameters:
//   - ctx: The context carrying the transaction and optional trace information
//   - payload: The checkpoint payload, rendered as the log message
//   - transactionID: Identifier of the transaction, or "" to resolve it from ctx
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
func (c *TransactionalClient) Debug(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.Zap.Debug(payloadMessage(payload), c.checkpointFields(ctx, transactionID, checkpointID, nil, extra...)...)
}

// Warning records a checkpoint for potential issues within a transaction
// that aren't necessarily errors.
//
// Parameters:
//   - ctx: The context carrying the transaction and optional trace information
//   - payload: The checkpoint payload, rendered as the log message
//   - transactionID: Identifier of the transaction, or "" to resolve it from ctx
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
func (c *TransactionalClient) Warning(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.Zap.Warn(payloadMessage(payload), c.checkpointFields(ctx, transactionID, checkpointID, nil, extra...)...)
}

// Error records an error checkpoint within a transaction, without asserting
// whether the cause is functional or technical. Prefer FuncError or TechError
// when the blame is known.
//
// Parameters:
//   - ctx: The context carrying the transaction and optional trace information
//   - payload: The checkpoint payload, rendered as the log message
//   - transactionID: Identifier of the transaction, or "" to resolve it from ctx
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
func (c *TransactionalClient) Error(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.Zap.Error(payloadMessage(payload), c.checkpointFields(ctx, transactionID, checkpointID, nil, extra...)...)
}

// Critical records a checkpoint for events demanding immediate attention
// within a transaction. Critical checkpoints are emitted at Zap's DPanic
// level, which logs at high severity without panicking in the production
// configuration this package builds.
//
// Parameters:
//   - ctx: The context carrying the transaction and optional trace information
//   - payload: The checkpoint payload, rendered as the log message
//   - transactionID: Identifier of the transaction, or "" to resolve it from ctx
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
func (c *TransactionalClient) Critical(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	c.Zap.DPanic(payloadMessage(payload), c.checkpointFields(ctx, transactionID, checkpointID, nil, extra...)...)
}

// FuncError records an error checkpoint caused by a business rule violation,
// such as a rejected order or an invalid state transition. The entry carries
// the field "error_kind" set to "functional" so dashboards can separate
// business failures from infrastructure ones.
//
// Parameters:
//   - ctx: The context carrying the transaction and optional trace information
//   - payload: The checkpoint payload, rendered as the log message
//   - transactionID: Identifier of the transaction, or "" to resolve it from ctx
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
//
// Example:
//
//	txn.FuncError(ctx, "order rejected: credit limit exceeded", "", "checkout.credit", map[string]interface{}{
//	    "customer_id": customerID,
//	})
func (c *TransactionalClient) FuncError(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	fields := c.checkpointFields(ctx, transactionID, checkpointID, nil, extra...)
	fields = append(fields, zap.String("error_kind", "functional"))
	c.Zap.Error(payloadMessage(payload), fields...)
}

// TechError records an error checkpoint caused by an infrastructure failure,
// such as a lost connection or a failing dependency. The entry carries the
// field "error_kind" set to "technical" and, when err is non-nil, the error
// under Zap's standard "error" key.
//
// Parameters:
//   - ctx: The context carrying the transaction and optional trace information
//   - payload: The checkpoint payload, rendered as the log message
//   - transactionID: Identifier of the transaction, or "" to resolve it from ctx
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - err: The causing error, or nil when only the payload describes it
//   - extra: Variable number of map[string]interface{} containing additional structured data
//
// Example:
//
//	if err := charge(ctx, order); err != nil {
//	    txn.TechError(ctx, "charge failed", "", "checkout.charge", err, map[string]interface{}{
//	        "provider": "acme-pay",
//	    })
//	}
func (c *TransactionalClient) TechError(ctx context.Context, payload interface{}, transactionID, checkpointID string, err error, extra ...map[string]interface{}) {
	fields := c.checkpointFields(ctx, transactionID, checkpointID, err, extra...)
	fields = append(fields, zap.String("error_kind", "technical"))
	c.Zap.Error(payloadMessage(payload), fields...)
}

// ReportStartExternal records the start of an interaction with an external
// system. The entry carries the field "external_phase" set to "start".
// Pair it with ReportEndExternal around the outbound call.
//
// Parameters:
//   - ctx: The context carrying the transaction and optional trace information
//   - payload: The checkpoint payload, rendered as the log message
//   - transactionID: Identifier of the transaction, or "" to resolve it from ctx
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
//
// Example:
//
//	txn.ReportStartExternal(ctx, "charging card", "", "checkout.charge", map[string]interface{}{
//	    "provider": "acme-pay",
//	})
func (c *TransactionalClient) ReportStartExternal(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	fields := c.checkpointFields(ctx, transactionID, checkpointID, nil, extra...)
	fields = append(fields, zap.String("external_phase", "start"))
	c.Zap.Info(payloadMessage(payload), fields...)
}

// ReportEndExternal records the end of an interaction with an external
// system, successful or not. The entry carries the field "external_phase"
// set to "end".
//
// Parameters:
//   - ctx: The context carrying the transaction and optional trace information
//   - payload: The checkpoint payload, rendered as the log message
//   - transactionID: Identifier of the transaction, or "" to resolve it from ctx
//   - checkpointID: Identifier of the checkpoint, or "" when unnamed
//   - extra: Variable number of map[string]interface{} containing additional structured data
func (c *TransactionalClient) ReportEndExternal(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
	fields := c.checkpointFields(ctx, transactionID, checkpointID, nil, extra...)
	fields = append(fields, zap.String("external_phase", "end"))
	c.Zap.Info(payloadMessage(payload), fields...)
}
