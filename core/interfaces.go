package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates the host filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Provider is the set of filesystem operations every backend MUST implement.
//
// Names are pathnames in the provider's namespace. Absolute names start at
// the provider root; relative names are resolved by the provider against its
// own notion of a working directory.
//
// Every error returned by a Provider is an errors.Error carrying a taxonomy
// code, the failing operation and the offending name.
type Provider interface {
	// Stat returns metadata for name, following symbolic links.
	Stat(name string) (Metadata, error)

	// Lstat returns metadata for name without following a final symbolic
	// link. If name is a link, the returned Metadata describes the link.
	Lstat(name string) (Metadata, error)

	// Canonicalize returns the absolute pathname of name with every symbolic
	// link, "." and ".." resolved. The target must exist.
	Canonicalize(name string) (string, error)

	// OpenDir opens the directory name for iteration.
	// It fails with NOT_A_DIRECTORY if name exists but is not a directory.
	// The returned stream must be closed.
	OpenDir(name string) (DirStream, error)

	// Mkdir creates a single directory with the given permission bits
	// (before umask). It fails with ALREADY_EXISTS if name exists and with
	// NOT_FOUND if the parent is missing.
	Mkdir(name string, perm fs.FileMode) error

	// Remove removes a file, a symbolic link or an empty directory.
	// A symbolic link is removed itself; its target is never touched.
	// A non-empty directory fails with NOT_EMPTY.
	Remove(name string) error

	// Chmod sets the permission bits of name, following symbolic links.
	Chmod(name string, perm fs.FileMode) error

	// Type returns the underlying filesystem type.
	Type() FSType
}

// DirStream is an open directory handle yielding entry names one at a time.
//
// Next returns the next entry name. At the end of the directory it returns
// io.EOF. Streams may or may not yield "." and ".."; consumers filter them.
// A DirStream is not safe for concurrent use.
type DirStream interface {
	Next() (string, error)
	io.Closer
}

// SymlinkProvider defines symbolic link operations.
//
// Use type assertion to check if a provider supports symbolic links:
//
//	if sp, ok := provider.(core.SymlinkProvider); ok {
//	    err := sp.Symlink("target", "link")
//	}
type SymlinkProvider interface {
	// Symlink creates a symbolic link named link pointing to target.
	// The target is stored as is and need not exist.
	Symlink(target, link string) error

	// Readlink returns the destination of the named symbolic link.
	Readlink(name string) (string, error)
}

// FileProvider defines byte-level access to regular files.
//
// Use type assertion to check if a provider can open files:
//
//	if fp, ok := provider.(core.FileProvider); ok {
//	    f, err := fp.OpenFile("data.bin", os.O_RDONLY, 0)
//	}
type FileProvider interface {
	// OpenFile opens name with the given flags (os.O_RDONLY, os.O_APPEND,
	// os.O_CREATE, ...). If the file is created, perm is used (before umask).
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)
}

// File represents an open file handle.
type File interface {
	io.Reader
	io.ReaderAt
	io.Writer
	io.Seeker
	io.Closer

	// Name returns the name of the file as provided to OpenFile.
	Name() string
}

// Syncer allows syncing file contents to stable storage.
//
// Not all File implementations support sync operations. Callers should use
// type assertion to check if this capability is available:
//
//	if s, ok := file.(Syncer); ok {
//	    err := s.Sync()
//	}
type Syncer interface {
	Sync() error
}

// ProcessContext is the process-global state that path operations depend
// on: the current working directory and the environment.
//
// Injecting it keeps that state out of package globals, so tests and
// embedded filesystems can run side by side without touching the real
// process.
type ProcessContext interface {
	// Getwd returns the absolute pathname of the working directory.
	Getwd() (string, error)

	// Chdir changes the working directory.
	Chdir(dir string) error

	// LookupEnv returns the value of an environment variable and whether
	// it is set.
	LookupEnv(key string) (string, bool)
}
