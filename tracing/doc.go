// Package tracing defines the capability contracts for business-level
// tracing: severity-leveled reporting keyed by checkpoint and transaction
// identifiers, with dedicated operations for functional errors, technical
// errors, and external-call boundaries.
//
// # Overview
//
// The package contains contracts only. It performs no I/O and never decides
// where trace entries go; concrete backends (a structured logger, a metrics
// recorder, a no-op) implement the interfaces defined here and applications
// depend on the interfaces. The one piece of shared behavior is identifier
// resolution (see below), which backends call so every trace entry carries a
// uniform, never-null identifier pair.
//
// Two specializations exist:
//
//   - ServiceTracer: five severity levels keyed by an optional checkpoint
//     id. For service-level reporting with no transaction context.
//   - TransactionalTracer: the same five levels plus FuncError, TechError,
//     ReportStartExternal and ReportEndExternal, all keyed by a transaction
//     id and checkpoint id carried alongside a context.Context.
//
// Both embed the root Tracer marker. A backend implements one (or both)
// specializations; forgetting a method is a compile error.
//
// # Functional vs Technical Errors
//
// TransactionalTracer separates two failure families:
//
//   - FuncError reports a business-rule violation (an order that cannot be
//     cancelled, a balance too low). The system behaved correctly.
//   - TechError reports an infrastructure failure (a lost connection, a
//     timeout) and optionally carries the causing error value.
//
// Backends are expected to keep the distinction visible in their output so
// operators can alert on technical errors without drowning in functional
// ones.
//
// # Transaction Resolution
//
// Callers routinely omit the transaction id and let the tracer fill it from
// the transaction carried by the context (see the transaction package).
// ResolveMain and ResolveCurrent implement that rule: an empty transaction
// id is replaced by the outermost ("main") or innermost ("current")
// transaction id respectively, and the checkpoint id passes through as a
// plain string, empty when absent. They are package functions rather than
// interface methods so no backend can change the normalization.
//
//	func (b *backend) Info(ctx context.Context, payload interface{}, transactionID, checkpointID string, extra ...map[string]interface{}) {
//	    ref := tracing.ResolveCurrent(ctx, transactionID, checkpointID)
//	    // ref.TransactionID and ref.CheckpointID are never null-like
//	}
//
// Whether a backend logs nested work against the outermost or the innermost
// transaction is its own choice: it picks the helper.
//
// # Basic Usage
//
//	func cancelOrder(ctx context.Context, tracer tracing.TransactionalTracer, id string) error {
//	    tracer.Info(ctx, "cancelling order", "", "order.cancel", map[string]interface{}{
//	        "order_id": id,
//	    })
//	    if err := validate(id); err != nil {
//	        tracer.FuncError(ctx, "order not cancellable", "", "order.cancel")
//	        return err
//	    }
//	    ...
//	}
//
// # Thread Safety
//
// Implementations must be safe for concurrent use; the contracts are called
// from arbitrary goroutines. The resolution helpers only read the context
// and are trivially safe.
package tracing
