package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"syscall"
)

// fsError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type fsError struct {
	code           ErrorCode
	classification ErrorClassification
	op             string
	path           string
	errno          syscall.Errno
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[CODE] op path: message" with the op/path segment omitted when
// unset, followed by ": cause" if a cause is present.
func (e *fsError) Error() string {
	prefix := fmt.Sprintf("[%s]", e.code)
	if e.op != "" {
		prefix += " " + e.op
	}
	if e.path != "" {
		prefix += " " + e.path
	}
	if e.op != "" || e.path != "" {
		prefix += ":"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s %s", prefix, e.message)
}

func (e *fsError) Code() ErrorCode                     { return e.code }
func (e *fsError) Classification() ErrorClassification { return e.classification }
func (e *fsError) Op() string                          { return e.op }
func (e *fsError) Path() string                        { return e.path }
func (e *fsError) Errno() syscall.Errno                { return e.errno }
func (e *fsError) Message() string                     { return e.message }

// Context returns a copy of the context map, or nil if none was attached.
func (e *fsError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *fsError) Unwrap() error {
	return e.cause
}

// Is lets taxonomy errors match the io/fs sentinels, so callers written
// against the standard library keep working:
//
//	errors.Is(err, fs.ErrNotExist)
func (e *fsError) Is(target error) bool {
	switch target {
	case fs.ErrNotExist:
		return e.code == CodeNotFound
	case fs.ErrExist:
		return e.code == CodeAlreadyExists
	case fs.ErrPermission:
		return e.code == CodePermissionDenied
	case fs.ErrInvalid:
		return e.code == CodeInvalidArgument
	case stderrors.ErrUnsupported:
		return e.code == CodeUnsupported
	}
	return false
}

// clone returns a shallow copy with a private context map.
func (e *fsError) clone() *fsError {
	c := *e
	c.context = e.Context()
	return &c
}
