package errors

import (
	stderrors "errors"
	"fmt"
)

// Wrap wraps an error with additional context while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If the wrapped error is an Error, its classification, operation, pathname
// and errno are preserved. Otherwise, the default classification for the
// error code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := sys.Remove(entry, true); err != nil {
//	    return errors.Wrap(err, errors.GetCode(err), "failed to clear staging directory")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}

	wrapped := &fsError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		cause:          err,
	}

	var inner Error
	if stderrors.As(err, &inner) {
		wrapped.classification = inner.Classification()
		wrapped.op = inner.Op()
		wrapped.path = inner.Path()
		wrapped.errno = inner.Errno()
	}

	return wrapped
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}
