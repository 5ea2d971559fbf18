package errors

import "syscall"

// Error extends the standard error interface with the structured information
// filesystem callers need to react to a failure.
//
// Error carries a code from the filesystem taxonomy, a retry classification,
// the operation and pathname that failed, the raw errno when one was
// reported, and optional context metadata. It remains compatible with the
// standard library (errors.Is, errors.As, errors.Unwrap).
type Error interface {
	error

	// Code returns the taxonomy code identifying the kind of failure.
	Code() ErrorCode

	// Classification returns whether the failure is retryable or permanent.
	Classification() ErrorClassification

	// Op returns the provider operation that failed (e.g. "stat", "mkdir").
	// Returns an empty string if the error was not produced by an operation.
	Op() string

	// Path returns the pathname the operation was applied to, if any.
	Path() string

	// Errno returns the raw OS error number, or 0 if none was reported.
	Errno() syscall.Errno

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
