package errors

import stderrors "errors"

// WithContext adds a single context field to an error.
// Returns a new Error with the context field added; existing fields are preserved.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "recursive", true)
func WithContext(err error, key string, value interface{}) Error {
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not an Error, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	var base *fsError
	var fsErr Error
	switch {
	case stderrors.As(err, &base):
		base = base.clone()
	case stderrors.As(err, &fsErr):
		base = &fsError{
			code:           fsErr.Code(),
			classification: fsErr.Classification(),
			op:             fsErr.Op(),
			path:           fsErr.Path(),
			errno:          fsErr.Errno(),
			message:        fsErr.Message(),
			context:        fsErr.Context(),
			cause:          fsErr.Unwrap(),
		}
	default:
		base = &fsError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			cause:          err,
		}
	}

	if base.context == nil {
		base.context = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		base.context[k] = v
	}
	return base
}
