// Package exterr classifies failures that originate from calling an
// external system, so calling code can apply differentiated handling,
// such as retrying a timeout but never retrying rejected credentials.
//
// # Taxonomy
//
// Classification lives in a sealed tree of classes. Matching any class with
// errors.Is also matches every ancestor, so handling code opts into exactly
// the granularity it needs without enumerating leaf types:
//
//	ErrExternalInteraction
//	├── ErrWarning
//	└── ErrFailure
//	    ├── ErrInterface
//	    │   └── ErrConfiguration
//	    ├── ErrDependency
//	    │   ├── ErrData
//	    │   ├── ErrOperational
//	    │   │   ├── ErrConnection
//	    │   │   ├── ErrTimeout
//	    │   │   ├── ErrAuthentication
//	    │   │   ├── ErrAuthorization
//	    │   │   └── ErrDelivery
//	    │   ├── ErrIntegrity
//	    │   ├── ErrProgramming
//	    │   ├── ErrNotSupported
//	    │   └── ErrInvalidData
//	    └── ErrInternal
//	        └── ErrProcessing
//
// The class is the whole semantic payload. Concrete errors add a
// human-readable message and optionally wrap a causing error, nothing else.
//
// # Basic Usage
//
// Producing:
//
//	if deadline.Before(time.Now()) {
//	    return exterr.NewTimeout("payment provider did not answer in 2s")
//	}
//
// Handling, at whichever granularity fits:
//
//	err := callProvider(ctx)
//	switch {
//	case errors.Is(err, exterr.ErrTimeout):
//	    return scheduleRetry(err)
//	case errors.Is(err, exterr.ErrOperational):
//	    return failOver(err)
//	case errors.Is(err, exterr.ErrExternalInteraction):
//	    return reportAndAbort(err)
//	}
//
// The IsRetryable and IsAuthFailure helpers package the common policies, and
// Translate lifts ordinary transport errors (deadline exceeded, connection
// refused) into the taxonomy so client code does not need bespoke switches
// per library.
//
// # Relation to Domain Errors
//
// This taxonomy covers failures attributable to a call crossing the system
// boundary. Business-rule failures inside the system's own logic belong to
// the domainerr package; the two are never mixed and neither converts into
// the other.
package exterr
