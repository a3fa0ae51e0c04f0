package tracing

import (
	"context"

	"github.com/aalemi-dev/biztrace/transaction"
)

// Ref is the normalized identifier pair handed to a backend for one trace
// entry. Both fields are plain strings: an unknown identifier is the empty
// string, never a null-like value, regardless of what the caller supplied.
type Ref struct {
	// TransactionID identifies the logical unit of work.
	TransactionID string

	// CheckpointID names the workflow point that produced the entry.
	CheckpointID string
}

// ResolveMain normalizes the identifier pair for a trace call, filling a
// missing transaction id from the outermost ("main") transaction carried by
// ctx. Explicit identifiers pass through untouched, and an empty checkpoint
// id stays empty, so resolution is idempotent.
//
// Backends call this (or ResolveCurrent) once per operation, before
// formatting output. It is not part of the TransactionalTracer contract;
// normalization behaves the same under every backend.
func ResolveMain(ctx context.Context, transactionID, checkpointID string) Ref {
	if transactionID == "" {
		transactionID = transaction.MainID(ctx)
	}
	return Ref{TransactionID: transactionID, CheckpointID: checkpointID}
}

// ResolveCurrent normalizes the identifier pair for a trace call, filling a
// missing transaction id from the innermost ("current") transaction carried
// by ctx. Inside nested work the two helpers differ: ResolveMain attributes
// the entry to the outermost transaction, ResolveCurrent to the one active
// at the call site.
func ResolveCurrent(ctx context.Context, transactionID, checkpointID string) Ref {
	if transactionID == "" {
		transactionID = transaction.CurrentID(ctx)
	}
	return Ref{TransactionID: transactionID, CheckpointID: checkpointID}
}
