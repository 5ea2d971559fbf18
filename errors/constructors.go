package errors

import "fmt"

// New creates a new Error with the given code and message.
// The error classification is determined by the error code using default mappings.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidArgument, "permission string must be 3 or 9 characters")
func New(code ErrorCode, message string) Error {
	return &fsError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidArgument, "unknown provider %q", name)
func Newf(code ErrorCode, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}

// NewOp creates an Error attributed to a provider operation on a pathname.
//
// Example:
//
//	return errors.NewOp(errors.CodeNotEmpty, "remove", name, "directory not empty")
func NewOp(code ErrorCode, op, path, message string) Error {
	return &fsError{
		code:           code,
		classification: getDefaultClassification(code),
		op:             op,
		path:           path,
		message:        message,
	}
}
