package billy

import (
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/syskit/core"
)

// File wraps billy.File to implement core.File.
// It stores the name given to OpenFile since billy.File.Name() may return
// different formats depending on the backend implementation.
type File struct {
	file billy.File
	name string
}

func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

func (f *File) ReadAt(p []byte, off int64) (int, error) {
	return f.file.ReadAt(p, off)
}

func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

func (f *File) Close() error {
	return f.file.Close()
}

// Name returns the name provided to OpenFile.
func (f *File) Name() string {
	return f.name
}

// Sync implements core.Syncer.
// For backends without Sync (e.g., memfs), this is a no-op.
func (f *File) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.File   = (*File)(nil)
	_ core.Syncer = (*File)(nil)
	_ io.ReaderAt = (*File)(nil)
)
