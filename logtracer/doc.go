// Package logtracer implements the tracing interfaces on top of Uber's Zap
// logger, emitting one structured JSON log entry per traced checkpoint.
//
// # Overview
//
// The package provides two clients:
//
//   - ServiceClient implements tracing.ServiceTracer for service-level
//     checkpoints that carry no transaction identity.
//   - TransactionalClient implements tracing.TransactionalTracer for
//     checkpoints tied to a business transaction.
//
// Every entry carries the checkpoint identity as structured fields:
// ServiceClient emits "checkpoint_id", TransactionalClient emits both
// "transaction_id" and "checkpoint_id". Identifiers are always emitted as
// strings; a missing identifier shows up as the empty string, never as null.
//
// TransactionalClient resolves an empty transaction id from the transaction
// carried by the context (see the transaction package). By default it uses
// the innermost (current) transaction; set Config.UseMainTransaction to
// resolve against the root transaction of the context instead.
//
// Error checkpoints distinguish who is to blame via the "error_kind" field:
// FuncError marks business rule violations as "functional", TechError marks
// infrastructure failures as "technical". External interactions are bracketed
// by ReportStartExternal and ReportEndExternal, which emit "external_phase"
// set to "start" or "end".
//
// # Basic Usage
//
//	cfg := logtracer.Config{
//	    Level:       logtracer.Info,
//	    ServiceName: "checkout",
//	}
//	svc := logtracer.NewServiceClient(cfg)
//	svc.Info("cache warmed", "startup.cache", map[string]interface{}{
//	    "entries": 1204,
//	})
//
//	txn := logtracer.NewTransactionalClient(cfg)
//	txn.Info(ctx, "order accepted", "", "checkout.accept", nil)
//	txn.TechError(ctx, "charge failed", "", "checkout.charge", err)
//
// # FX Module Integration
//
//	app := fx.New(
//	    logtracer.FXModule,
//	    fx.Supply(logtracer.Config{Level: logtracer.Info, ServiceName: "checkout"}),
//	    fx.Invoke(run),
//	)
//
// The module provides both concrete clients plus the tracing.ServiceTracer
// and tracing.TransactionalTracer interfaces, and flushes buffered entries on
// shutdown.
//
// # Thread Safety
//
// Both clients are safe for concurrent use; they hold no mutable state beyond
// the Zap logger, which is itself concurrency safe.
package logtracer
