package errors

import "syscall"

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: exhausted handle tables, transient device errors, interrupted calls.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: missing entries, permission denials, non-empty directories.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeTooManyOpenHandles: ClassificationRetryable,
	CodeIOFailure:          ClassificationRetryable,

	CodeNotFound:         ClassificationPermanent,
	CodePermissionDenied: ClassificationPermanent,
	CodeAlreadyExists:    ClassificationPermanent,
	CodeNotADirectory:    ClassificationPermanent,
	CodeIsADirectory:     ClassificationPermanent,
	CodeNotEmpty:         ClassificationPermanent,
	CodeInvalidArgument:  ClassificationPermanent,
	CodeUnsupported:      ClassificationPermanent,
	CodeOther:            ClassificationPermanent,
	CodeUnknown:          ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}

// classifyErrno refines the classification of CodeOther errors, whose retry
// behavior depends on the concrete errno rather than the code.
func classifyErrno(code ErrorCode, errno syscall.Errno) ErrorClassification {
	if code == CodeOther {
		switch errno {
		case syscall.EINTR, syscall.EAGAIN, syscall.EBUSY:
			return ClassificationRetryable
		}
	}
	return getDefaultClassification(code)
}
