// Package canonical resolves pathnames to their canonical form by walking
// them one component at a time, the way realpath(3) does.
package canonical

import (
	"io/fs"
	"path"
	"strings"
	"syscall"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
)

// Resolver is the filesystem access a walk needs. Both methods receive
// clean absolute names.
type Resolver interface {
	Lstat(name string) (core.Metadata, error)
	Readlink(name string) (string, error)
}

// Resolve returns the absolute pathname of name with every symbolic link,
// "." and ".." resolved. name must be absolute.
//
// ".." is applied to the already resolved prefix, so "link/.." climbs out of
// the link's target rather than out of the directory holding the link.
// Following more than maxHops links fails with ELOOP. Every component must
// exist: the first missing one fails the walk.
func Resolve(r Resolver, name string, maxHops int) (string, error) {
	if !strings.HasPrefix(name, "/") {
		return "", errors.NewOp(errors.CodeInvalidArgument, "canonicalize", name, "name must be absolute")
	}

	w := &walker{r: r, name: name, maxHops: maxHops}
	resolved, err := securejoin.SecureJoinVFS("/", name, w)
	if w.err != nil {
		return "", w.err
	}
	if err != nil {
		return "", errors.Translate("canonicalize", name, err)
	}
	return resolved, nil
}

// walker adapts a Resolver to securejoin.VFS. securejoin treats missing
// components lexically; walker records the first one so Resolve can fail
// like realpath(3) does.
type walker struct {
	r       Resolver
	name    string
	maxHops int

	hops int
	err  error
}

func (w *walker) Lstat(name string) (fs.FileInfo, error) {
	name = path.Clean(name)
	md, err := w.r.Lstat(name)
	if err != nil {
		if w.err == nil {
			w.err = w.missing(name, err)
		}
		return nil, err
	}
	return info{name: path.Base(name), md: md}, nil
}

// missing turns a failed lookup under a non-directory into ENOTDIR.
func (w *walker) missing(name string, err error) error {
	if !errors.HasCode(err, errors.CodeNotFound) {
		return err
	}
	if parent, perr := w.r.Lstat(path.Dir(name)); perr == nil && !parent.IsDir() {
		return errors.FromErrno("canonicalize", w.name, syscall.ENOTDIR)
	}
	return err
}

func (w *walker) Readlink(name string) (string, error) {
	w.hops++
	if w.hops > w.maxHops {
		err := errors.FromErrno("canonicalize", w.name, syscall.ELOOP)
		w.err = err
		return "", err
	}
	return w.r.Readlink(path.Clean(name))
}

// info is the fs.FileInfo securejoin inspects; only the mode type matters.
type info struct {
	name string
	md   core.Metadata
}

func (i info) Name() string       { return i.name }
func (i info) Size() int64        { return i.md.Size }
func (i info) ModTime() time.Time { return time.Time{} }
func (i info) IsDir() bool        { return i.md.IsDir() }
func (i info) Sys() any           { return nil }

func (i info) Mode() fs.FileMode {
	mode := i.md.Perm
	switch i.md.Type {
	case core.FileTypeDirectory:
		mode |= fs.ModeDir
	case core.FileTypeSymlink:
		mode |= fs.ModeSymlink
	}
	return mode
}

var _ securejoin.VFS = (*walker)(nil)
