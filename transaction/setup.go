package transaction

import (
	"context"

	"github.com/google/uuid"
)

// Manager opens transactions and scopes them to contexts.
//
// Manager implements the Provider interface.
type Manager struct {
	idgen func() string
}

// NewManager initializes and returns a new transaction manager based on
// configuration.
//
// Parameters:
//   - cfg: Configuration for the manager; the zero value is usable and
//     generates UUID identifiers
//
// Returns:
//   - *Manager: A manager ready for use
func NewManager(cfg Config) *Manager {
	idgen := cfg.IDGenerator
	if idgen == nil {
		idgen = uuid.NewString
	}
	return &Manager{idgen: idgen}
}

// Begin derives a context carrying a new transaction.
//
// When ctx already carries a transaction the new one nests inside it: the
// main id of the enclosing transaction is preserved and only the current id
// changes. Otherwise the new transaction is its own main, so both identifiers
// are equal.
//
// There is no explicit end operation. A transaction goes out of scope with
// the context that carries it; callers that need strict scoping simply stop
// propagating the derived context.
func (m *Manager) Begin(ctx context.Context) (context.Context, Transaction) {
	id := m.idgen()
	txn := Transaction{ID: id, MainID: id}
	if parent, ok := FromContext(ctx); ok {
		txn.MainID = parent.MainID
	}
	return NewContext(ctx, txn), txn
}

// MainTransactionID returns the identifier of the outermost transaction
// carried by ctx, or the empty string when none is active.
func (m *Manager) MainTransactionID(ctx context.Context) string {
	return MainID(ctx)
}

// TransactionID returns the identifier of the innermost transaction carried
// by ctx, or the empty string when none is active.
func (m *Manager) TransactionID(ctx context.Context) string {
	return CurrentID(ctx)
}
