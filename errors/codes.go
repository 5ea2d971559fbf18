package errors

// ErrorCode represents a category in the filesystem error taxonomy.
// Codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// CodeNotFound indicates a pathname or one of its components does not exist (ENOENT).
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodePermissionDenied indicates the caller lacks the rights for the operation (EACCES, EPERM).
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// CodeAlreadyExists indicates the target entry already exists (EEXIST).
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeNotADirectory indicates a component used as a directory is not one (ENOTDIR).
	CodeNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeIsADirectory indicates a file operation was applied to a directory (EISDIR).
	CodeIsADirectory ErrorCode = "IS_A_DIRECTORY"

	// CodeNotEmpty indicates a directory removal failed because entries remain (ENOTEMPTY).
	CodeNotEmpty ErrorCode = "NOT_EMPTY"

	// CodeTooManyOpenHandles indicates the process or system handle table is full (EMFILE, ENFILE).
	CodeTooManyOpenHandles ErrorCode = "TOO_MANY_OPEN_HANDLES"

	// CodeInvalidArgument indicates a malformed argument (EINVAL, ENAMETOOLONG, ELOOP).
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// CodeIOFailure indicates the device reported a low-level failure (EIO).
	CodeIOFailure ErrorCode = "IO_FAILURE"

	// CodeUnsupported indicates the provider does not implement the operation (ENOSYS, EOPNOTSUPP).
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeOther is the catch-all for OS errors outside the taxonomy.
	// The raw value is available through Error.Errno.
	CodeOther ErrorCode = "OTHER"

	// CodeUnknown indicates an error that did not originate from the OS layer
	// and could not be categorized.
	CodeUnknown ErrorCode = "UNKNOWN"
)
