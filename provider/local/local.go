//go:build unix

package local

import (
	"io"
	"io/fs"
	"os"
	"syscall"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/internal/canonical"
	"golang.org/x/sys/unix"
)

const (
	// DefaultBatchSize is the number of entries a directory stream reads
	// from the kernel at a time.
	DefaultBatchSize = 128

	// maxLinkHops matches the Linux kernel limit for path resolution.
	maxLinkHops = 40
)

// FS is a core.Provider over the host filesystem.
// Names are passed to the kernel unchanged, so relative names are resolved
// against the process working directory.
type FS struct {
	cfg config
}

// Option configures provider creation.
type Option func(*config)

type config struct {
	batchSize int
}

// WithBatchSize sets how many entries a directory stream reads per system
// call. Values below one are ignored.
func WithBatchSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// New creates a host filesystem provider.
func New(opts ...Option) *FS {
	cfg := config{batchSize: DefaultBatchSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FS{cfg: cfg}
}

// Type returns FSTypeLocal.
func (p *FS) Type() core.FSType {
	return core.FSTypeLocal
}

// Stat returns metadata for name, following symbolic links.
func (p *FS) Stat(name string) (core.Metadata, error) {
	var st unix.Stat_t
	if err := unix.Stat(name, &st); err != nil {
		return core.Metadata{}, errors.Translate("stat", name, err)
	}
	return metadataFromStat(&st), nil
}

// Lstat returns metadata for name without following a final symbolic link.
func (p *FS) Lstat(name string) (core.Metadata, error) {
	var st unix.Stat_t
	if err := unix.Lstat(name, &st); err != nil {
		return core.Metadata{}, errors.Translate("lstat", name, err)
	}
	return metadataFromStat(&st), nil
}

// Canonicalize is the equivalent of realpath(3).
func (p *FS) Canonicalize(name string) (string, error) {
	abs := name
	if len(name) == 0 || name[0] != '/' {
		wd, err := unix.Getwd()
		if err != nil {
			return "", errors.Translate("canonicalize", name, err)
		}
		abs = wd + "/" + name
	}
	return canonical.Resolve(p, abs, maxLinkHops)
}

// OpenDir opens name and streams its entries in batches.
func (p *FS) OpenDir(name string) (core.DirStream, error) {
	fd, err := unix.Open(name, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.Translate("opendir", name, err)
	}
	return &dirStream{f: os.NewFile(uintptr(fd), name), batch: p.cfg.batchSize}, nil
}

// Mkdir creates a single directory.
func (p *FS) Mkdir(name string, perm fs.FileMode) error {
	if err := unix.Mkdir(name, uint32(perm.Perm())); err != nil {
		return errors.Translate("mkdir", name, err)
	}
	return nil
}

// Remove removes a file, a symbolic link or an empty directory, like
// remove(3). Symbolic links are unlinked, never followed.
func (p *FS) Remove(name string) error {
	var st unix.Stat_t
	if err := unix.Lstat(name, &st); err != nil {
		return errors.Translate("remove", name, err)
	}

	if uint32(st.Mode)&unix.S_IFMT != unix.S_IFDIR {
		if err := unix.Unlink(name); err != nil {
			return errors.Translate("remove", name, err)
		}
		return nil
	}

	err := unix.Rmdir(name)
	switch err {
	case nil:
		return nil
	case unix.EEXIST:
		// Some systems report a non-empty directory as EEXIST.
		return errors.FromErrno("remove", name, syscall.ENOTEMPTY)
	default:
		return errors.Translate("remove", name, err)
	}
}

// Chmod sets the permission bits of name, following symbolic links.
func (p *FS) Chmod(name string, perm fs.FileMode) error {
	if err := unix.Chmod(name, uint32(perm.Perm())); err != nil {
		return errors.Translate("chmod", name, err)
	}
	return nil
}

// Symlink creates a symbolic link named link pointing to target.
func (p *FS) Symlink(target, link string) error {
	if err := unix.Symlink(target, link); err != nil {
		return errors.Translate("symlink", link, err)
	}
	return nil
}

// Readlink returns the destination of the named symbolic link.
func (p *FS) Readlink(name string) (string, error) {
	for size := 256; ; size *= 2 {
		buf := make([]byte, size)
		n, err := unix.Readlink(name, buf)
		if err != nil {
			return "", errors.Translate("readlink", name, err)
		}
		if n < size {
			return string(buf[:n]), nil
		}
	}
}

// OpenFile opens a regular file with the specified flags and permissions.
func (p *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	if flag&os.O_CREATE == 0 {
		var st unix.Stat_t
		if err := unix.Stat(name, &st); err != nil {
			return nil, errors.Translate("open", name, err)
		}
		if uint32(st.Mode)&unix.S_IFMT == unix.S_IFDIR {
			return nil, errors.FromErrno("open", name, syscall.EISDIR)
		}
	}

	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, errors.Translate("open", name, err)
	}
	return f, nil
}

func metadataFromStat(st *unix.Stat_t) core.Metadata {
	mode := uint32(st.Mode)
	return core.Metadata{
		Type: fileType(mode),
		Perm: fs.FileMode(mode & 0o777),
		Size: st.Size,
	}
}

func fileType(mode uint32) core.FileType {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return core.FileTypeRegular
	case unix.S_IFDIR:
		return core.FileTypeDirectory
	case unix.S_IFLNK:
		return core.FileTypeSymlink
	case unix.S_IFIFO:
		return core.FileTypeFIFO
	case unix.S_IFSOCK:
		return core.FileTypeSocket
	case unix.S_IFBLK:
		return core.FileTypeDevice
	case unix.S_IFCHR:
		return core.FileTypeCharDevice
	default:
		return core.FileTypeUnknown
	}
}

// dirStream reads directory entries in batches from an open handle.
type dirStream struct {
	f     *os.File
	batch int
	buf   []string
	err   error
}

func (s *dirStream) Next() (string, error) {
	for len(s.buf) == 0 {
		if s.err != nil {
			return "", s.err
		}
		names, err := s.f.Readdirnames(s.batch)
		s.buf = names
		switch {
		case err == io.EOF:
			s.err = io.EOF
		case err != nil:
			return "", errors.Translate("readdir", s.f.Name(), err)
		}
	}
	name := s.buf[0]
	s.buf = s.buf[1:]
	return name, nil
}

func (s *dirStream) Close() error {
	s.buf = nil
	if err := s.f.Close(); err != nil {
		return errors.Translate("closedir", s.f.Name(), err)
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.Provider        = (*FS)(nil)
	_ core.SymlinkProvider = (*FS)(nil)
	_ core.FileProvider    = (*FS)(nil)
)
