package file

import (
	"io"
	"os"

	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/path"
	"github.com/jmgilman/syskit/system"
)

// Like is a file read and appended to in units of S: []byte for Binary,
// string for Text.
type Like[S []byte | string] interface {
	// Read returns up to count units starting offset units into the file.
	// Fewer units are returned when the file ends first.
	Read(count int, offset int64) (S, error)

	// ReadAll returns the whole file.
	ReadAll() (S, error)

	// Append writes to the end of the file, creating it if needed.
	Append(data S) error

	// ByteCount returns the size of the file in bytes, which for Text is
	// not the number of characters.
	ByteCount() (int64, error)
}

// Mode is the permission used when Append creates a file (before umask).
const Mode os.FileMode = 0o666

// local is the part shared by Binary and Text: a path on a System.
type local struct {
	sys  *system.System
	path path.Path
}

// Path returns the location of the file.
func (l local) Path() path.Path {
	return l.path
}

// ByteCount returns the size of the file in bytes.
func (l local) ByteCount() (int64, error) {
	return l.sys.Size(l.path)
}

func (l local) open() (io.ReadCloser, error) {
	return l.sys.OpenFile(l.path, os.O_RDONLY, 0)
}

func (l local) append(data []byte) error {
	f, err := l.sys.OpenFile(l.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, Mode)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return errors.Translate("write", l.path.String(), err)
	}
	if err := f.Close(); err != nil {
		return errors.Translate("close", l.path.String(), err)
	}
	return nil
}

func (l local) readAll() ([]byte, error) {
	f, err := l.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Translate("read", l.path.String(), err)
	}
	return data, nil
}

func validateRange(op string, p path.Path, count int, offset int64) error {
	if count < 0 || offset < 0 {
		return errors.NewOp(errors.CodeInvalidArgument, op, p.String(), "count and offset must not be negative")
	}
	return nil
}
