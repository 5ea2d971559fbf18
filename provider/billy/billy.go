package billy

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/internal/canonical"
)

// DefaultMaxLinkHops is the number of symbolic links Canonicalize follows
// before giving up with ELOOP. It matches the Linux kernel limit.
const DefaultMaxLinkHops = 40

// FS adapts a billy.Filesystem to core.Provider.
//
// Billy has no notion of a working directory, so FS keeps its own. Relative
// names passed to any method are resolved against it before reaching billy.
// The working directory is read and changed through the ProcessContext
// returned by Process.
type FS struct {
	bfs  billy.Filesystem
	kind core.FSType
	cfg  config
	// root is the host directory behind a NewLocal filesystem, empty
	// otherwise.
	root string

	mu  sync.RWMutex
	cwd string
}

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	maxLinkHops int
	env         map[string]string
}

// WithMaxLinkHops sets how many symbolic links Canonicalize follows before
// failing. Values below one are ignored.
func WithMaxLinkHops(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxLinkHops = n
		}
	}
}

// WithEnv sets the environment exposed by Process. The map is copied.
func WithEnv(env map[string]string) Option {
	return func(c *config) {
		c.env = make(map[string]string, len(env))
		for k, v := range env {
			c.env[k] = v
		}
	}
}

func newFS(bfs billy.Filesystem, kind core.FSType, opts []Option) *FS {
	cfg := config{maxLinkHops: DefaultMaxLinkHops, env: map[string]string{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FS{bfs: bfs, kind: kind, cfg: cfg, cwd: "/"}
}

// NewLocal creates a go-billy-backed provider over the host directory root.
// Absolute names are interpreted relative to root.
func NewLocal(root string, opts ...Option) *FS {
	root = filepath.Clean(root)
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	p := newFS(osfs.New(root), core.FSTypeLocal, opts)
	p.root = root
	return p
}

// NewMemory creates a go-billy-backed in-memory provider.
// The filesystem initially holds only the root directory.
func NewMemory(opts ...Option) *FS {
	return newFS(memfs.New(), core.FSTypeMemory, opts)
}

// Unwrap returns the underlying billy.Filesystem.
func (p *FS) Unwrap() billy.Filesystem {
	return p.bfs
}

// Type returns the filesystem type chosen at construction.
func (p *FS) Type() core.FSType {
	return p.kind
}

// abs anchors a relative name at the working directory without cleaning it,
// so ".." can still be resolved physically by Canonicalize.
func (p *FS) abs(name string) string {
	name = filepath.ToSlash(name)
	if strings.HasPrefix(name, "/") {
		return name
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if name == "" {
		return p.cwd
	}
	return p.cwd + "/" + name
}

// normalize converts names to clean absolute slash paths.
func (p *FS) normalize(name string) string {
	return filepath.ToSlash(filepath.Clean(p.abs(name)))
}

// Stat returns metadata for name, following symbolic links.
func (p *FS) Stat(name string) (core.Metadata, error) {
	info, err := p.bfs.Stat(p.normalize(name))
	if err != nil {
		return core.Metadata{}, errors.Translate("stat", name, err)
	}
	return core.MetadataFromInfo(info), nil
}

// Lstat returns metadata for name without following a final symbolic link.
func (p *FS) Lstat(name string) (core.Metadata, error) {
	info, err := p.bfs.Lstat(p.normalize(name))
	if err != nil {
		return core.Metadata{}, errors.Translate("lstat", name, err)
	}
	return core.MetadataFromInfo(info), nil
}

// Canonicalize resolves every symbolic link, "." and ".." in name.
func (p *FS) Canonicalize(name string) (string, error) {
	return canonical.Resolve(p, p.abs(name), p.cfg.maxLinkHops)
}

// OpenDir returns a stream over a snapshot of the directory's entries.
func (p *FS) OpenDir(name string) (core.DirStream, error) {
	dir := p.normalize(name)
	info, err := p.bfs.Stat(dir)
	if err != nil {
		return nil, errors.Translate("opendir", name, err)
	}
	if !info.IsDir() {
		return nil, errors.FromErrno("opendir", name, syscall.ENOTDIR)
	}

	infos, err := p.bfs.ReadDir(dir)
	if err != nil {
		return nil, errors.Translate("opendir", name, err)
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name()
	}
	return &snapshotStream{names: names}, nil
}

// Mkdir creates a single directory.
// Unlike MkdirAll, this will fail if the parent directory does not exist.
func (p *FS) Mkdir(name string, perm fs.FileMode) error {
	dir := p.normalize(name)
	if _, err := p.bfs.Lstat(dir); err == nil {
		return errors.FromErrno("mkdir", name, syscall.EEXIST)
	}

	parent := filepath.ToSlash(filepath.Dir(dir))
	info, err := p.bfs.Stat(parent)
	if err != nil {
		return errors.Translate("mkdir", name, err)
	}
	if !info.IsDir() {
		return errors.FromErrno("mkdir", name, syscall.ENOTDIR)
	}

	// MkdirAll won't create parents since we verified the parent exists.
	if err := p.bfs.MkdirAll(dir, perm); err != nil {
		return errors.Translate("mkdir", name, err)
	}
	return nil
}

// Remove removes a file, a symbolic link or an empty directory.
func (p *FS) Remove(name string) error {
	target := p.normalize(name)
	if target == "/" {
		return errors.FromErrno("remove", name, syscall.EBUSY)
	}

	info, err := p.bfs.Lstat(target)
	if err != nil {
		return errors.Translate("remove", name, err)
	}
	if info.IsDir() {
		// memfs does not refuse non-empty directories by itself.
		entries, err := p.bfs.ReadDir(target)
		if err != nil {
			return errors.Translate("remove", name, err)
		}
		if len(entries) > 0 {
			return errors.FromErrno("remove", name, syscall.ENOTEMPTY)
		}
	}

	if err := p.bfs.Remove(target); err != nil {
		return errors.Translate("remove", name, err)
	}
	return nil
}

// Chmod sets permission bits. It uses billy.Change when the backend has it;
// otherwise a NewLocal filesystem changes the host file directly, after
// resolving links the way Canonicalize does. memfs fails with UNSUPPORTED.
func (p *FS) Chmod(name string, perm fs.FileMode) error {
	if ch, ok := p.bfs.(billy.Change); ok {
		if err := ch.Chmod(p.normalize(name), perm.Perm()); err != nil {
			return errors.Translate("chmod", name, err)
		}
		return nil
	}

	if p.root == "" {
		return errors.NewOp(errors.CodeUnsupported, "chmod", name, "filesystem does not support permission changes")
	}
	resolved, err := p.Canonicalize(name)
	if err != nil {
		return err
	}
	if err := os.Chmod(filepath.Join(p.root, filepath.FromSlash(resolved)), perm.Perm()); err != nil {
		return errors.Translate("chmod", name, err)
	}
	return nil
}

// Symlink creates a symbolic link named link pointing to target.
func (p *FS) Symlink(target, link string) error {
	name := p.normalize(link)
	if _, err := p.bfs.Lstat(name); err == nil {
		return errors.FromErrno("symlink", link, syscall.EEXIST)
	}
	if err := p.bfs.Symlink(filepath.ToSlash(target), name); err != nil {
		return errors.Translate("symlink", link, err)
	}
	return nil
}

// Readlink returns the destination of the named symbolic link.
func (p *FS) Readlink(name string) (string, error) {
	target, err := p.bfs.Readlink(p.normalize(name))
	if err != nil {
		return "", errors.Translate("readlink", name, err)
	}
	return filepath.ToSlash(target), nil
}

// OpenFile opens a file with the specified flags and permissions.
func (p *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	normalized := p.normalize(name)
	info, err := p.bfs.Stat(normalized)
	switch {
	case err == nil && info.IsDir():
		return nil, errors.FromErrno("open", name, syscall.EISDIR)
	case err != nil && flag&os.O_CREATE == 0:
		return nil, errors.Translate("open", name, err)
	case err != nil:
		// memfs creates missing parents on its own.
		parent, perr := p.bfs.Stat(filepath.ToSlash(filepath.Dir(normalized)))
		if perr != nil {
			return nil, errors.Translate("open", name, perr)
		}
		if !parent.IsDir() {
			return nil, errors.FromErrno("open", name, syscall.ENOTDIR)
		}
	}

	f, err := p.bfs.OpenFile(normalized, flag, perm)
	if err != nil {
		return nil, errors.Translate("open", name, err)
	}
	return &File{file: f, name: name}, nil
}

// snapshotStream yields names captured when the directory was opened.
type snapshotStream struct {
	names  []string
	closed bool
}

func (s *snapshotStream) Next() (string, error) {
	if s.closed {
		return "", errors.New(errors.CodeInvalidArgument, "directory stream is closed")
	}
	if len(s.names) == 0 {
		return "", io.EOF
	}
	name := s.names[0]
	s.names = s.names[1:]
	return name, nil
}

func (s *snapshotStream) Close() error {
	s.closed = true
	s.names = nil
	return nil
}

// Compile-time interface checks.
var (
	_ core.Provider        = (*FS)(nil)
	_ core.SymlinkProvider = (*FS)(nil)
	_ core.FileProvider    = (*FS)(nil)
)
