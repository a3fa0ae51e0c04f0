// Package domainerr defines the domain error taxonomy: recoverable,
// business-meaningful failures distinguishable by category.
//
// Every domain error carries an immutable (keyname, message) pair: a
// machine-readable key for programmatic handling and a human-readable
// description. The category is encoded by the concrete type, NotFoundError
// when the subject of an operation does not exist, NotAllowedError when the
// operation is forbidden for the current actor or state.
//
// Callers catch by category or by the common base, whichever granularity
// they need:
//
//	var notFound *domainerr.NotFoundError
//	if errors.As(err, &notFound) {
//	    // subject missing
//	}
//
//	var domainErr *domainerr.DomainError
//	if errors.As(err, &domainErr) {
//	    // any domain error; keyname/message available
//	    respond(domainErr.Keyname(), domainErr.Message())
//	}
//
// Domain errors describe failures inside the system's own logic. Failures
// attributable to a call crossing the system boundary belong to the exterr
// package; the two taxonomies are never mixed.
package domainerr
