package system

import (
	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/path"
	"github.com/jmgilman/syskit/perm"
)

// Exists reports whether p can be stat'ed. Any file type counts; a broken
// symbolic link does not exist. A failed query yields false.
func (s *System) Exists(p path.Path) bool {
	_, ok := s.query(p, false)
	return ok
}

// IsFile reports whether p is a regular file, following symbolic links.
func (s *System) IsFile(p path.Path) bool {
	md, ok := s.query(p, false)
	return ok && md.Type == core.FileTypeRegular
}

// IsDirectory reports whether p is a directory, following symbolic links.
func (s *System) IsDirectory(p path.Path) bool {
	md, ok := s.query(p, false)
	return ok && md.IsDir()
}

// IsSymbolicLink reports whether p itself is a symbolic link.
func (s *System) IsSymbolicLink(p path.Path) bool {
	md, ok := s.query(p, true)
	return ok && md.Type == core.FileTypeSymlink
}

// query backs the predicates: failures are logged and reported as false,
// never returned.
func (s *System) query(p path.Path, lstat bool) (core.Metadata, bool) {
	var (
		md  core.Metadata
		err error
	)
	if lstat {
		md, err = s.provider.Lstat(p.String())
	} else {
		md, err = s.provider.Stat(p.String())
	}
	if err != nil {
		s.logger.Debug("metadata query failed", "path", p.String(), "lstat", lstat, "error", err)
		return core.Metadata{}, false
	}
	return md, true
}

// Metadata returns the metadata of p, following symbolic links.
func (s *System) Metadata(p path.Path) (core.Metadata, error) {
	return s.provider.Stat(p.String())
}

// LinkMetadata returns the metadata of p without following a final
// symbolic link.
func (s *System) LinkMetadata(p path.Path) (core.Metadata, error) {
	return s.provider.Lstat(p.String())
}

// Size returns the size of p in bytes.
func (s *System) Size(p path.Path) (int64, error) {
	md, err := s.provider.Stat(p.String())
	if err != nil {
		return 0, err
	}
	return md.Size, nil
}

// Permissions returns the permission triplet of p.
func (s *System) Permissions(p path.Path) (perm.Triplet, error) {
	md, err := s.provider.Stat(p.String())
	if err != nil {
		return perm.Triplet{}, err
	}
	return perm.FromMode(md.Perm), nil
}

// SetPermissions replaces the permission bits of p.
func (s *System) SetPermissions(p path.Path, t perm.Triplet) error {
	if err := s.provider.Chmod(p.String(), t.Mode()); err != nil {
		return err
	}
	s.logger.Debug("permissions changed", "path", p.String(), "mode", t.String())
	return nil
}

// Resolved returns the canonical form of p: absolute, with every symbolic
// link, "." and ".." resolved. It fails with NOT_FOUND when p does not
// exist.
func (s *System) Resolved(p path.Path) (path.Path, error) {
	name, err := s.provider.Canonicalize(p.String())
	if err != nil {
		return path.Path{}, err
	}
	return path.New(name), nil
}
