// Package errors provides the structured error taxonomy shared by every
// syskit package.
//
// Filesystem operations fail for a small number of reasons that callers want
// to branch on: an entry is missing, access is denied, a directory is not
// empty. This package maps raw OS error numbers onto those categories, keeps
// the operation and pathname that failed, and stays compatible with the
// standard library (errors.Is, errors.As, errors.Unwrap).
//
// # Taxonomy
//
//   - CodeNotFound, CodePermissionDenied, CodeAlreadyExists
//   - CodeNotADirectory, CodeIsADirectory, CodeNotEmpty
//   - CodeTooManyOpenHandles, CodeInvalidArgument, CodeIOFailure
//   - CodeUnsupported
//   - CodeOther, which keeps the raw errno (see Error.Errno)
//   - CodeUnknown for errors that did not come from the OS layer
//
// # Translating OS errors
//
//	if err := unix.Rmdir(name); err != nil {
//	    return errors.Translate("rmdir", name, err)
//	}
//
// Translate accepts errno values, *fs.PathError values wrapping them, and the
// io/fs sentinel errors. Errors that already belong to the taxonomy pass
// through unchanged.
//
// # Standard Library Compatibility
//
// Taxonomy errors match the io/fs sentinels:
//
//	_, err := sys.Metadata(path.New("/missing"))
//	errors.Is(err, fs.ErrNotExist) // true
//
// and errors.As finds them anywhere in a chain:
//
//	var fsErr errors.Error
//	if errors.As(err, &fsErr) {
//	    fmt.Println(fsErr.Op(), fsErr.Path(), fsErr.Errno())
//	}
//
// # Classification
//
// Exhausted handle tables and device I/O failures are retryable; everything
// else is permanent. For CodeOther the classification follows the errno
// (EINTR, EAGAIN and EBUSY are retryable).
package errors
