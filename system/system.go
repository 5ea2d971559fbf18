package system

import (
	"log/slog"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/path"
	"github.com/jmgilman/syskit/perm"
)

// System performs the filesystem-dependent Path operations against a
// provider. It is safe for concurrent use when its provider and process
// context are.
type System struct {
	provider core.Provider
	process  core.ProcessContext
	logger   *slog.Logger
	dirPerm  perm.Triplet
	fallback path.Path
}

// Option configures a System.
type Option func(*System)

// WithProcess sets the process context used for the working directory and
// the environment. Without it those operations fail with UNSUPPORTED and no
// environment variable is visible.
func WithProcess(pc core.ProcessContext) Option {
	return func(s *System) {
		if pc != nil {
			s.process = pc
		}
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *System) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDirectoryPermission sets the permissions MakeDirectory uses when none
// are given. The default is rwxr-xr-x.
func WithDirectoryPermission(t perm.Triplet) Option {
	return func(s *System) {
		s.dirPerm = t
	}
}

// WithTempFallback sets the directory TemporaryDirectory returns when
// neither $TMPDIR, /tmp nor the working directory is usable.
// The default is ".".
func WithTempFallback(p path.Path) Option {
	return func(s *System) {
		s.fallback = p
	}
}

// New creates a System backed by provider.
func New(provider core.Provider, opts ...Option) *System {
	s := &System{
		provider: provider,
		process:  noProcess{},
		logger:   slog.New(slog.DiscardHandler),
		dirPerm:  perm.DefaultDirectory,
		fallback: path.New("."),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("provider", provider.Type().String())
	return s
}

// Provider returns the provider the System was built with.
func (s *System) Provider() core.Provider {
	return s.provider
}

// noProcess is the process context of a System built without WithProcess.
type noProcess struct{}

func (noProcess) Getwd() (string, error) {
	return "", errors.NewOp(errors.CodeUnsupported, "getwd", "", "no process context configured")
}

func (noProcess) Chdir(dir string) error {
	return errors.NewOp(errors.CodeUnsupported, "chdir", dir, "no process context configured")
}

func (noProcess) LookupEnv(string) (string, bool) {
	return "", false
}
