package file

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/path"
	"github.com/jmgilman/syskit/system"
)

// DefaultTempPrefix is used by WithTemporary when prefix is empty.
const DefaultTempPrefix = "syskit."

// WithTemporary creates an empty file in the system's temporary directory,
// calls fn with its path and removes the file afterwards, whether or not fn
// fails. The file name is prefix followed by a random UUID. A prefix
// containing a separator fails with INVALID_ARGUMENT.
//
//	err := file.WithTemporary(sys, "report.", func(p path.Path) error {
//	    return file.NewText(sys, p).Append("draft")
//	})
func WithTemporary(sys *system.System, prefix string, fn func(path.Path) error) (err error) {
	if strings.ContainsRune(prefix, path.Separator) {
		return errors.NewOp(errors.CodeInvalidArgument, "create", prefix, "temporary file prefix must not contain a separator")
	}
	if prefix == "" {
		prefix = DefaultTempPrefix
	}
	p := sys.TemporaryDirectory().Joined(path.New(prefix + uuid.NewString()))

	f, err := sys.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		_ = sys.Remove(p, false)
		return err
	}

	defer func() {
		if rerr := sys.Remove(p, false); err == nil {
			err = rerr
		}
	}()
	return fn(p)
}
