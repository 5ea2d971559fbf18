package config

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/path"
	"github.com/jmgilman/syskit/perm"
	"gopkg.in/yaml.v3"
)

// Provider names accepted in Config.Provider.
const (
	// ProviderOS uses the operating system directly.
	ProviderOS = "os"
	// ProviderBilly uses go-billy's osfs rooted at Config.Root.
	ProviderBilly = "billy"
	// ProviderMemory uses an empty in-memory filesystem.
	ProviderMemory = "memory"
)

// Log formats accepted in Config.LogFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// FileName is the configuration file looked up by front-ends when no
// explicit file is given.
const FileName = "syskit.yaml"

// Config selects the provider a System runs on and how it logs.
type Config struct {
	Provider            string       `yaml:"provider"`
	Root                string       `yaml:"root,omitempty"`
	LogLevel            string       `yaml:"log_level"`
	LogFormat           string       `yaml:"log_format"`
	DirectoryPermission perm.Triplet `yaml:"directory_permission"`
	TempDir             path.Path    `yaml:"temp_dir,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Provider:            ProviderOS,
		Root:                "/",
		LogLevel:            "warn",
		LogFormat:           FormatText,
		DirectoryPermission: perm.DefaultDirectory,
	}
}

// Load decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected. Empty input yields the defaults.
func Load(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, errors.CodeInvalidArgument, "failed to decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads the configuration file name. A missing file fails with
// NOT_FOUND.
func LoadFile(name string) (Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return Config{}, errors.Translate("open", name, err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := Load(f)
	if err != nil {
		return Config{}, errors.WithContext(err, "file", name)
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOS, ProviderMemory:
	case ProviderBilly:
		if c.Root == "" {
			return errors.New(errors.CodeInvalidArgument, "provider billy requires a root")
		}
	default:
		return errors.Newf(errors.CodeInvalidArgument, "unknown provider %q", c.Provider)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return errors.Newf(errors.CodeInvalidArgument, "unknown log format %q", c.LogFormat)
	}
	return nil
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog
// level. Case is ignored.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, errors.Newf(errors.CodeInvalidArgument, "unknown log level %q", name)
	}
	return level, nil
}

// Logger builds a logger writing to w in the configured format and level.
// It assumes c is valid; an unknown level falls back to info.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
