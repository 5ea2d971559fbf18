package config

import (
	"log/slog"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
	billyfs "github.com/jmgilman/syskit/provider/billy"
	"github.com/jmgilman/syskit/system"
)

// System builds the System described by c, logging to logger.
func (c Config) System(logger *slog.Logger) (*system.System, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var (
		provider core.Provider
		process  core.ProcessContext
	)
	switch c.Provider {
	case ProviderOS:
		p, pc, err := osProvider()
		if err != nil {
			return nil, err
		}
		provider, process = p, pc
	case ProviderBilly:
		fs := billyfs.NewLocal(c.Root)
		provider, process = fs, fs.Process()
	case ProviderMemory:
		fs := billyfs.NewMemory()
		provider, process = fs, fs.Process()
	default:
		return nil, errors.Newf(errors.CodeInvalidArgument, "unknown provider %q", c.Provider)
	}

	opts := []system.Option{
		system.WithProcess(process),
		system.WithLogger(logger),
		system.WithDirectoryPermission(c.DirectoryPermission),
	}
	if !c.TempDir.IsEmpty() {
		opts = append(opts, system.WithTempFallback(c.TempDir))
	}
	return system.New(provider, opts...), nil
}
