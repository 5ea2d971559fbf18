package system

import (
	"io/fs"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/path"
	"github.com/jmgilman/syskit/perm"
)

// MakeDirectory creates the directory p. The parent must exist.
// The permissions default to those set by WithDirectoryPermission; only the
// first triplet given is used.
func (s *System) MakeDirectory(p path.Path, permission ...perm.Triplet) error {
	t := s.dirPerm
	if len(permission) > 0 {
		t = permission[0]
	}
	if err := s.provider.Mkdir(p.String(), t.Mode()); err != nil {
		return err
	}
	s.logger.Debug("directory created", "path", p.String(), "mode", t.String())
	return nil
}

// Remove removes the entry at p.
//
// Without recursively, a directory must be empty or Remove fails with
// NOT_EMPTY. With recursively, a directory's contents are removed depth
// first before the directory itself. The first failure stops the walk and is
// returned; whatever was already removed stays removed. Symbolic links are
// removed, never followed.
func (s *System) Remove(p path.Path, recursively bool) error {
	if recursively {
		md, err := s.provider.Lstat(p.String())
		if err != nil {
			return err
		}
		if md.IsDir() {
			err := s.ForEachEntry(p, func(entry path.Path) error {
				return s.Remove(entry, true)
			})
			if err != nil {
				return err
			}
		}
	}

	if err := s.provider.Remove(p.String()); err != nil {
		return err
	}
	s.logger.Debug("removed", "path", p.String())
	return nil
}

// OpenFile opens the file at p. It fails with UNSUPPORTED when the provider
// cannot open files.
func (s *System) OpenFile(p path.Path, flag int, mode fs.FileMode) (core.File, error) {
	fp, ok := s.provider.(core.FileProvider)
	if !ok {
		return nil, errors.NewOp(errors.CodeUnsupported, "open", p.String(), "provider cannot open files")
	}
	return fp.OpenFile(p.String(), flag, mode)
}

// Symlink creates a symbolic link at link pointing to target. It fails with
// UNSUPPORTED when the provider has no symbolic links.
func (s *System) Symlink(target, link path.Path) error {
	sp, ok := s.provider.(core.SymlinkProvider)
	if !ok {
		return errors.NewOp(errors.CodeUnsupported, "symlink", link.String(), "provider has no symbolic links")
	}
	return sp.Symlink(target.String(), link.String())
}

// ReadLink returns the target of the symbolic link at p.
func (s *System) ReadLink(p path.Path) (path.Path, error) {
	sp, ok := s.provider.(core.SymlinkProvider)
	if !ok {
		return path.Path{}, errors.NewOp(errors.CodeUnsupported, "readlink", p.String(), "provider has no symbolic links")
	}
	target, err := sp.Readlink(p.String())
	if err != nil {
		return path.Path{}, err
	}
	return path.New(target), nil
}
