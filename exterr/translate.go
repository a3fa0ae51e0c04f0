package exterr

import (
	"context"
	"errors"
	"net"
	"os"
	"strings"
)

// ClassOf returns the taxonomy class carried by err, or nil when err has
// none. The search walks the whole wrap chain, so a classified error stays
// classifiable after fmt.Errorf("%w") wrapping.
func ClassOf(err error) *Class {
	var e *Error
	if errors.As(err, &e) {
		return e.class
	}
	var c *Class
	if errors.As(err, &c) {
		return c
	}
	return nil
}

// IsExternal reports whether err belongs to the external-interaction
// taxonomy.
func IsExternal(err error) bool {
	return errors.Is(err, ErrExternalInteraction)
}

// IsRetryable returns true if the error might be resolved by retrying the
// external call: connection, timeout and delivery failures are transient by
// nature.
func IsRetryable(err error) bool {
	retryableClasses := []error{
		ErrConnection,
		ErrTimeout,
		ErrDelivery,
	}

	for _, class := range retryableClasses {
		if errors.Is(err, class) {
			return true
		}
	}
	return false
}

// IsAuthFailure returns true if the external system rejected the call for
// authentication or authorization reasons. Retrying these unchanged never
// helps.
func IsAuthFailure(err error) bool {
	authClasses := []error{
		ErrAuthentication,
		ErrAuthorization,
	}

	for _, class := range authClasses {
		if errors.Is(err, class) {
			return true
		}
	}
	return false
}

// Translate converts common transport-level errors into taxonomy errors.
// This lets calling code classify failures from arbitrary client libraries
// without bespoke switches per library.
//
// Errors that already carry a taxonomy class are returned unchanged, as are
// errors with no known mapping; nil stays nil. The original error is always
// preserved as the cause of the translated one.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrExternalInteraction) {
		return err
	}

	// Deadline and timeout shapes from the standard library.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return Wrap(ErrTimeout, "deadline exceeded", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Wrap(ErrTimeout, "network timeout", err)
	}

	// Network-level failures.
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return Wrap(ErrConnection, "name resolution failed", err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return Wrap(ErrConnection, opErr.Op+" failed", err)
	}

	// Check error message for common patterns (fallback for string matching)
	errMsg := strings.ToLower(err.Error())
	switch {
	// Connection related
	case strings.Contains(errMsg, "connection refused"):
		return Wrap(ErrConnection, "connection refused", err)
	case strings.Contains(errMsg, "connection reset"):
		return Wrap(ErrConnection, "connection reset", err)
	case strings.Contains(errMsg, "broken pipe"):
		return Wrap(ErrConnection, "broken pipe", err)
	case strings.Contains(errMsg, "no such host"):
		return Wrap(ErrConnection, "no such host", err)

	// Timeout related
	case strings.Contains(errMsg, "timeout"):
		return Wrap(ErrTimeout, "timed out", err)

	default:
		// Return the original error if no pattern matches
		return err
	}
}
