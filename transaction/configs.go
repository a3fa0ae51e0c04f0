package transaction

// Config defines the configuration structure for the transaction manager.
type Config struct {
	// IDGenerator produces identifiers for new transactions.
	//
	// When nil, the manager generates random UUID strings. Supplying a
	// generator is mostly useful in tests, where deterministic ids make
	// assertions possible, or when an application mints ids elsewhere
	// (e.g. reusing a message id from a broker).
	IDGenerator func() string
}
