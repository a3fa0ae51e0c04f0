package exterr

// Class identifies one node of the external-interaction taxonomy. Classes
// form a sealed tree: every class unwraps to its parent, so matching a class
// with errors.Is also matches all of its ancestors up to
// ErrExternalInteraction.
//
// Classes are sentinels. They are compared by identity, never constructed
// outside this package.
type Class struct {
	name   string
	parent *Class
}

// Error implements the error interface; it returns the class name.
func (c *Class) Error() string { return c.name }

// Unwrap returns the parent class, or nil for the root.
func (c *Class) Unwrap() error {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

// The taxonomy. Branch classes exist so handling code can opt into
// coarser-grained recovery; leaf classes name one concrete failure mode.
var (
	// ErrExternalInteraction is the root: any failure attributable to a call
	// crossing the system boundary.
	ErrExternalInteraction = &Class{name: "external interaction error"}

	// ErrWarning classifies anomalies reported by an external system that do
	// not fail the interaction.
	ErrWarning = &Class{name: "external warning", parent: ErrExternalInteraction}

	// ErrFailure groups every error-severity failure, as opposed to warnings.
	ErrFailure = &Class{name: "external failure", parent: ErrExternalInteraction}

	// ErrInterface classifies misuse of the interface to the external
	// system rather than a fault in the system itself.
	ErrInterface = &Class{name: "interface error", parent: ErrFailure}

	// ErrConfiguration classifies an invalid or incomplete configuration of
	// the interface (wrong endpoint, missing credential material).
	ErrConfiguration = &Class{name: "configuration error", parent: ErrInterface}

	// ErrDependency groups failures originating inside the external
	// dependency itself.
	ErrDependency = &Class{name: "external dependency error", parent: ErrFailure}

	// ErrData classifies problems with the processed data, such as invalid
	// values or mismatched types.
	ErrData = &Class{name: "data error", parent: ErrDependency}

	// ErrOperational groups failures related to the dependency's operation,
	// not necessarily under the caller's control.
	ErrOperational = &Class{name: "operational error", parent: ErrDependency}

	// ErrConnection classifies failures establishing or keeping a connection.
	ErrConnection = &Class{name: "connection failure", parent: ErrOperational}

	// ErrTimeout classifies an external call that exceeded its deadline.
	ErrTimeout = &Class{name: "timeout", parent: ErrOperational}

	// ErrAuthentication classifies rejected credentials.
	ErrAuthentication = &Class{name: "authentication failure", parent: ErrOperational}

	// ErrAuthorization classifies insufficient permissions for the attempted
	// operation.
	ErrAuthorization = &Class{name: "authorization failure", parent: ErrOperational}

	// ErrDelivery classifies a payload that could not be delivered to the
	// dependency.
	ErrDelivery = &Class{name: "delivery failure", parent: ErrOperational}

	// ErrIntegrity classifies violated integrity guarantees, such as
	// constraint or checksum failures.
	ErrIntegrity = &Class{name: "integrity error", parent: ErrDependency}

	// ErrProgramming classifies requests the dependency rejected as
	// malformed: bad query, unknown resource, wrong parameter shape.
	ErrProgramming = &Class{name: "programming error", parent: ErrDependency}

	// ErrNotSupported classifies use of an operation the dependency does not
	// support.
	ErrNotSupported = &Class{name: "not supported", parent: ErrDependency}

	// ErrInvalidData classifies data the dependency refused to accept.
	ErrInvalidData = &Class{name: "invalid data", parent: ErrDependency}

	// ErrInternal groups failures internal to this system that surfaced
	// while interacting with the dependency.
	ErrInternal = &Class{name: "internal error", parent: ErrFailure}

	// ErrProcessing classifies a failure while processing the interaction's
	// request or response.
	ErrProcessing = &Class{name: "processing error", parent: ErrInternal}
)

// Error is a concrete external-interaction failure. The class carries the
// whole classification; the message only serves humans, and the optional
// cause preserves the original error for inspection.
type Error struct {
	class *Class
	msg   string
	cause error
}

// New creates an Error of the given class.
func New(class *Class, msg string) *Error {
	return &Error{class: class, msg: msg}
}

// Wrap creates an Error of the given class wrapping a causing error.
func Wrap(class *Class, msg string, cause error) *Error {
	return &Error{class: class, msg: msg, cause: cause}
}

// Class returns the taxonomy class of the error.
func (e *Error) Class() *Class { return e.class }

// Error implements the error interface.
func (e *Error) Error() string {
	text := e.class.name
	if e.msg != "" {
		text += ": " + e.msg
	}
	if e.cause != nil {
		text += ": " + e.cause.Error()
	}
	return text
}

// Unwrap exposes the class chain and the causing error, so errors.Is matches
// the class (and its ancestors) and errors.As still reaches the cause.
func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.class}
	}
	return []error{e.class, e.cause}
}

// NewWarning creates an Error classified as ErrWarning.
func NewWarning(msg string) *Error { return New(ErrWarning, msg) }

// NewFailure creates an Error classified as ErrFailure.
func NewFailure(msg string) *Error { return New(ErrFailure, msg) }

// NewInterface creates an Error classified as ErrInterface.
func NewInterface(msg string) *Error { return New(ErrInterface, msg) }

// NewConfiguration creates an Error classified as ErrConfiguration.
func NewConfiguration(msg string) *Error { return New(ErrConfiguration, msg) }

// NewDependency creates an Error classified as ErrDependency.
func NewDependency(msg string) *Error { return New(ErrDependency, msg) }

// NewData creates an Error classified as ErrData.
func NewData(msg string) *Error { return New(ErrData, msg) }

// NewOperational creates an Error classified as ErrOperational.
func NewOperational(msg string) *Error { return New(ErrOperational, msg) }

// NewConnection creates an Error classified as ErrConnection.
func NewConnection(msg string) *Error { return New(ErrConnection, msg) }

// NewTimeout creates an Error classified as ErrTimeout.
func NewTimeout(msg string) *Error { return New(ErrTimeout, msg) }

// NewAuthentication creates an Error classified as ErrAuthentication.
func NewAuthentication(msg string) *Error { return New(ErrAuthentication, msg) }

// NewAuthorization creates an Error classified as ErrAuthorization.
func NewAuthorization(msg string) *Error { return New(ErrAuthorization, msg) }

// NewDelivery creates an Error classified as ErrDelivery.
func NewDelivery(msg string) *Error { return New(ErrDelivery, msg) }

// NewIntegrity creates an Error classified as ErrIntegrity.
func NewIntegrity(msg string) *Error { return New(ErrIntegrity, msg) }

// NewProgramming creates an Error classified as ErrProgramming.
func NewProgramming(msg string) *Error { return New(ErrProgramming, msg) }

// NewNotSupported creates an Error classified as ErrNotSupported.
func NewNotSupported(msg string) *Error { return New(ErrNotSupported, msg) }

// NewInvalidData creates an Error classified as ErrInvalidData.
func NewInvalidData(msg string) *Error { return New(ErrInvalidData, msg) }

// NewInternal creates an Error classified as ErrInternal.
func NewInternal(msg string) *Error { return New(ErrInternal, msg) }

// NewProcessing creates an Error classified as ErrProcessing.
func NewProcessing(msg string) *Error { return New(ErrProcessing, msg) }
