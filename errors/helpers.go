package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // Handle missing entry
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or carries no Error in its chain.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNotEmpty {
//	    // Retry with recursive removal
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var fsErr Error
	if stderrors.As(err, &fsErr) {
		return fsErr.Code()
	}

	return CodeUnknown
}

// HasCode reports whether err carries the given taxonomy code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or carries no Error.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var fsErr Error
	if stderrors.As(err, &fsErr) {
		return fsErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or carries no Error (safe default).
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
