package file

import (
	"io"
	"os"

	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/path"
	"github.com/jmgilman/syskit/system"
)

// Binary is a file read and written as raw bytes.
type Binary struct {
	local
}

// NewBinary returns the binary file at p.
func NewBinary(sys *system.System, p path.Path) Binary {
	return Binary{local{sys: sys, path: p}}
}

// Read returns up to count bytes starting at byte offset.
func (b Binary) Read(count int, offset int64) ([]byte, error) {
	if err := validateRange("read", b.path, count, offset); err != nil {
		return nil, err
	}

	f, err := b.sys.OpenFile(b.path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.NewSectionReader(f, offset, int64(count)))
	if err != nil {
		return nil, errors.Translate("read", b.path.String(), err)
	}
	return data, nil
}

// ReadAll returns the content of the file.
func (b Binary) ReadAll() ([]byte, error) {
	return b.readAll()
}

// Append writes data at the end of the file, creating it if needed.
func (b Binary) Append(data []byte) error {
	return b.append(data)
}

var _ Like[[]byte] = Binary{}
