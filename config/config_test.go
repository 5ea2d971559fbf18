package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ProviderOS, cfg.Provider)
	assert.Equal(t, perm.DefaultDirectory, cfg.DirectoryPermission)
	assert.True(t, cfg.TempDir.IsEmpty())
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	input := `
provider: billy
root: /srv
log_level: debug
log_format: json
directory_permission: "0700"
temp_dir: /var/tmp/
`
	cfg, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, ProviderBilly, cfg.Provider)
	assert.Equal(t, "/srv", cfg.Root)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, "rwx------", cfg.DirectoryPermission.String())
	assert.Equal(t, "/var/tmp", cfg.TempDir.String())
}

func TestLoad_EmptyIsDefault(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(strings.NewReader("provider: memory\n"))
	require.NoError(t, err)
	assert.Equal(t, ProviderMemory, cfg.Provider)
	assert.Equal(t, Default().LogLevel, cfg.LogLevel)
	assert.Equal(t, perm.DefaultDirectory, cfg.DirectoryPermission)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown key", "color: blue\n"},
		{"unknown provider", "provider: ftp\n"},
		{"unknown level", "log_level: loud\n"},
		{"unknown format", "log_format: xml\n"},
		{"bad permission", "directory_permission: rwz\n"},
		{"billy without root", "provider: billy\nroot: \"\"\n"},
		{"not yaml", "provider: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(name, []byte("log_level: error\n"), 0o600))

	cfg, err := LoadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestLoadFile_InvalidCarriesFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(name, []byte("provider: ftp\n"), 0o600))

	_, err := LoadFile(name)
	var fsErr errors.Error
	require.True(t, errors.As(err, &fsErr))
	assert.Equal(t, name, fsErr.Context()["file"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(err))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogLevel = "info"
	cfg.LogFormat = FormatJSON

	logger := cfg.Logger(&buf)
	logger.Debug("hidden")
	logger.Info("shown", "path", "/a")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"path":"/a"`)

	buf.Reset()
	cfg.LogFormat = FormatText
	cfg.Logger(&buf).Warn("careful")
	assert.Contains(t, buf.String(), "msg=careful")
}
