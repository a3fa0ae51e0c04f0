package transaction

import "context"

// Provider defines the contract for opening transactions and reading their
// identifiers back from a context.
//
// This interface is implemented by the concrete *Manager type.
type Provider interface {
	// Begin derives a context carrying a new transaction and returns it
	// together with the transaction value.
	Begin(ctx context.Context) (context.Context, Transaction)

	// MainTransactionID returns the identifier of the outermost transaction
	// carried by ctx, or the empty string when none is active.
	MainTransactionID(ctx context.Context) string

	// TransactionID returns the identifier of the innermost transaction
	// carried by ctx, or the empty string when none is active.
	TransactionID(ctx context.Context) string
}
