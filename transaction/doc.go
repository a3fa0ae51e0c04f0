// Package transaction carries transaction identifiers through a
// context.Context so tracing backends can correlate log entries with the
// logical unit of work that produced them.
//
// # Overview
//
// A unit of work (an incoming request, a consumed message, a scheduled job)
// is identified by a transaction id. Units of work can nest: a handler that
// fans out into sub-steps may open an inner transaction per step. The package
// distinguishes the two ends of that nesting:
//
//   - the "main" transaction: the outermost one, opened when the unit of
//     work entered the system
//   - the "current" transaction: the innermost one active at the call site
//
// Both identifiers travel inside the context. There is no process-wide
// registry and no mutable global state; a transaction ends when the context
// that carries it goes out of scope.
//
// # Basic Usage
//
//	manager := transaction.NewManager(transaction.Config{})
//
//	// Entering a unit of work.
//	ctx, txn := manager.Begin(ctx)
//	log.Printf("started %s", txn.ID)
//
//	// Nested work keeps the main id and gets a fresh current id.
//	inner, _ := manager.Begin(ctx)
//	transaction.MainID(inner)    // id of the outermost transaction
//	transaction.CurrentID(inner) // id of the innermost transaction
//
// Code that only reads identifiers does not need a Manager:
//
//	func handle(ctx context.Context) {
//	    id := transaction.CurrentID(ctx) // "" when no transaction is active
//	    ...
//	}
//
// # FX Module Integration
//
//	app := fx.New(
//	    transaction.FXModule,
//	    fx.Supply(transaction.Config{}),
//	    // other modules...
//	)
//
// # Thread Safety
//
// Transactions are immutable values and contexts are safe for concurrent
// use, so identifiers can be read from any goroutine that holds the context.
// Goroutines spawned with a derived context observe the transaction that was
// active when they were started.
package transaction
