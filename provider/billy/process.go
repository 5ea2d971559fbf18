package billy

import (
	"syscall"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
)

// Process is an in-memory core.ProcessContext bound to an FS.
// Its working directory is the one FS uses to resolve relative names.
type Process struct {
	fs *FS
}

// Process returns the process context of the filesystem.
func (p *FS) Process() *Process {
	return &Process{fs: p}
}

// Getwd returns the current working directory of the filesystem.
func (pc *Process) Getwd() (string, error) {
	pc.fs.mu.RLock()
	defer pc.fs.mu.RUnlock()
	return pc.fs.cwd, nil
}

// Chdir changes the working directory. The target must be an existing
// directory; symbolic links are followed.
func (pc *Process) Chdir(dir string) error {
	target := pc.fs.normalize(dir)
	info, err := pc.fs.bfs.Stat(target)
	if err != nil {
		return errors.Translate("chdir", dir, err)
	}
	if !info.IsDir() {
		return errors.FromErrno("chdir", dir, syscall.ENOTDIR)
	}

	pc.fs.mu.Lock()
	defer pc.fs.mu.Unlock()
	pc.fs.cwd = target
	return nil
}

// LookupEnv returns the value of key from the configured environment.
func (pc *Process) LookupEnv(key string) (string, bool) {
	v, ok := pc.fs.cfg.env[key]
	return v, ok
}

var _ core.ProcessContext = (*Process)(nil)
