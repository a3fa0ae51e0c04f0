package domainerr

import "errors"

// DomainError is the base of the domain error taxonomy. It carries an
// immutable (keyname, message) pair and nothing else; construction never
// fails and there are no side effects.
//
// DomainError is a valid error on its own for failures with no finer
// category. The subtypes in this package unwrap to their embedded
// DomainError, so errors.As with a **DomainError target catches every
// member of the taxonomy.
type DomainError struct {
	keyname string
	message string
}

// New creates a DomainError carrying the given keyname and message.
func New(keyname, message string) *DomainError {
	return &DomainError{keyname: keyname, message: message}
}

// Keyname returns the machine-readable key identifying the failure.
func (e *DomainError) Keyname() string { return e.keyname }

// Message returns the human-readable description of the failure.
func (e *DomainError) Message() string { return e.message }

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.keyname == "" {
		return e.message
	}
	return e.keyname + ": " + e.message
}

// NotFoundError reports that the subject of an operation does not exist.
type NotFoundError struct {
	DomainError
}

// NewNotFound creates a NotFoundError carrying the given keyname and message.
func NewNotFound(keyname, message string) *NotFoundError {
	return &NotFoundError{DomainError{keyname: keyname, message: message}}
}

// Unwrap exposes the embedded DomainError so the category-independent base
// is matchable with errors.As.
func (e *NotFoundError) Unwrap() error { return &e.DomainError }

// NotAllowedError reports that an operation is forbidden for the current
// actor or state.
type NotAllowedError struct {
	DomainError
}

// NewNotAllowed creates a NotAllowedError carrying the given keyname and message.
func NewNotAllowed(keyname, message string) *NotAllowedError {
	return &NotAllowedError{DomainError{keyname: keyname, message: message}}
}

// Unwrap exposes the embedded DomainError so the category-independent base
// is matchable with errors.As.
func (e *NotAllowedError) Unwrap() error { return &e.DomainError }

// IsDomainError reports whether err is (or wraps) any domain error.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsNotAllowed reports whether err is (or wraps) a NotAllowedError.
func IsNotAllowed(err error) bool {
	var na *NotAllowedError
	return errors.As(err, &na)
}
