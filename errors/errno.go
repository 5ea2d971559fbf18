package errors

import (
	stderrors "errors"
	"io/fs"
	"syscall"
)

// errnoCodes maps OS error numbers onto the taxonomy. Anything absent maps
// to CodeOther and keeps the raw errno.
var errnoCodes = map[syscall.Errno]ErrorCode{
	syscall.ENOENT:       CodeNotFound,
	syscall.EACCES:       CodePermissionDenied,
	syscall.EPERM:        CodePermissionDenied,
	syscall.EROFS:        CodePermissionDenied,
	syscall.EEXIST:       CodeAlreadyExists,
	syscall.ENOTDIR:      CodeNotADirectory,
	syscall.EISDIR:       CodeIsADirectory,
	syscall.ENOTEMPTY:    CodeNotEmpty,
	syscall.EMFILE:       CodeTooManyOpenHandles,
	syscall.ENFILE:       CodeTooManyOpenHandles,
	syscall.EINVAL:       CodeInvalidArgument,
	syscall.ENAMETOOLONG: CodeInvalidArgument,
	syscall.ELOOP:        CodeInvalidArgument,
	syscall.EIO:          CodeIOFailure,
	syscall.ENOSYS:       CodeUnsupported,
	syscall.EOPNOTSUPP:   CodeUnsupported,
}

// CodeForErrno returns the taxonomy code for an OS error number.
func CodeForErrno(errno syscall.Errno) ErrorCode {
	if code, ok := errnoCodes[errno]; ok {
		return code
	}
	return CodeOther
}

// FromErrno builds an Error for a failed system call.
// The message is the OS description of the errno.
//
// Example:
//
//	if err := unix.Mkdir(name, mode); err != nil {
//	    return errors.FromErrno("mkdir", name, err.(unix.Errno))
//	}
func FromErrno(op, path string, errno syscall.Errno) Error {
	code := CodeForErrno(errno)
	return &fsError{
		code:           code,
		classification: classifyErrno(code, errno),
		op:             op,
		path:           path,
		errno:          errno,
		message:        errno.Error(),
		cause:          errno,
	}
}

// Translate converts an arbitrary error returned by an OS or provider call
// into an Error. It returns nil if err is nil.
//
// Translation order:
//   - an Error already in the chain is returned unchanged
//   - a syscall.Errno anywhere in the chain (including inside *fs.PathError)
//     is mapped with FromErrno, keeping err as the cause
//   - the io/fs sentinels map to their taxonomy codes
//   - anything else becomes CodeUnknown
func Translate(op, path string, err error) Error {
	if err == nil {
		return nil
	}

	var existing Error
	if stderrors.As(err, &existing) {
		return existing
	}

	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		translated := FromErrno(op, path, errno).(*fsError)
		translated.cause = err
		return translated
	}

	code := CodeUnknown
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		code = CodeNotFound
	case stderrors.Is(err, fs.ErrExist):
		code = CodeAlreadyExists
	case stderrors.Is(err, fs.ErrPermission):
		code = CodePermissionDenied
	case stderrors.Is(err, fs.ErrInvalid), stderrors.Is(err, fs.ErrClosed):
		code = CodeInvalidArgument
	case stderrors.Is(err, stderrors.ErrUnsupported):
		code = CodeUnsupported
	}

	return &fsError{
		code:           code,
		classification: getDefaultClassification(code),
		op:             op,
		path:           path,
		message:        err.Error(),
		cause:          err,
	}
}
