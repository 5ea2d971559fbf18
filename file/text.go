package file

import (
	"bufio"
	stderrors "errors"
	"io"
	"strings"

	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/path"
	"github.com/jmgilman/syskit/system"
)

// Text is a UTF-8 file read in characters (runes). Invalid bytes decode as
// utf8.RuneError, one per byte.
type Text struct {
	local
}

// NewText returns the text file at p.
func NewText(sys *system.System, p path.Path) Text {
	return Text{local{sys: sys, path: p}}
}

// Read returns up to count characters, skipping the first offset
// characters of the file.
func (t Text) Read(count int, offset int64) (string, error) {
	if err := validateRange("read", t.path, count, offset); err != nil {
		return "", err
	}

	f, err := t.open()
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	r := bufio.NewReader(f)
	for i := int64(0); i < offset; i++ {
		if _, _, err := r.ReadRune(); err != nil {
			return "", t.readErr(err)
		}
	}

	var sb strings.Builder
	for n := 0; n < count; n++ {
		c, _, err := r.ReadRune()
		if err != nil {
			if err := t.readErr(err); err != nil {
				return "", err
			}
			break
		}
		sb.WriteRune(c)
	}
	return sb.String(), nil
}

// readErr maps the end of the file to a short read.
func (t Text) readErr(err error) error {
	if stderrors.Is(err, io.EOF) {
		return nil
	}
	return errors.Translate("read", t.path.String(), err)
}

// ReadAll returns the content of the file.
func (t Text) ReadAll() (string, error) {
	data, err := t.readAll()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Append writes s at the end of the file, creating it if needed.
func (t Text) Append(s string) error {
	return t.append([]byte(s))
}

var _ Like[string] = Text{}
