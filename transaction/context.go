package transaction

import "context"

// Transaction identifies a logical unit of work.
//
// ID is the innermost (current) transaction; MainID is the outermost one of
// the same unit of work. For a transaction that is not nested the two are
// equal.
type Transaction struct {
	// ID is the identifier of this transaction.
	ID string

	// MainID is the identifier of the outermost enclosing transaction.
	MainID string
}

// contextKey is the private type used to key transactions in a context.
type contextKey struct{}

// NewContext returns a copy of ctx carrying txn.
func NewContext(ctx context.Context, txn Transaction) context.Context {
	return context.WithValue(ctx, contextKey{}, txn)
}

// FromContext returns the transaction carried by ctx and whether one was
// present.
func FromContext(ctx context.Context) (Transaction, bool) {
	if ctx == nil {
		return Transaction{}, false
	}
	txn, ok := ctx.Value(contextKey{}).(Transaction)
	return txn, ok
}

// MainID returns the identifier of the outermost transaction carried by ctx.
// It returns the empty string when ctx carries no transaction; callers never
// observe a null-like identifier.
func MainID(ctx context.Context) string {
	txn, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return txn.MainID
}

// CurrentID returns the identifier of the innermost transaction carried by
// ctx. It returns the empty string when ctx carries no transaction.
func CurrentID(ctx context.Context) string {
	txn, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return txn.ID
}
