package core_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/path"
	billyfs "github.com/jmgilman/syskit/provider/billy"
	"github.com/jmgilman/syskit/system"
)

// TestFSType_String verifies FSType.String() returns correct string representations.
func TestFSType_String(t *testing.T) {
	tests := []struct {
		name     string
		fsType   core.FSType
		expected string
	}{
		{
			name:     "Unknown",
			fsType:   core.FSTypeUnknown,
			expected: "unknown",
		},
		{
			name:     "Local",
			fsType:   core.FSTypeLocal,
			expected: "local",
		},
		{
			name:     "Memory",
			fsType:   core.FSTypeMemory,
			expected: "memory",
		},
		{
			name:     "Invalid",
			fsType:   core.FSType(999),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fsType.String()
			if result != tt.expected {
				t.Errorf("FSType(%d).String() = %q, want %q", tt.fsType, result, tt.expected)
			}
		})
	}
}

// TestFSType_ZeroValue verifies the zero FSType is unknown.
func TestFSType_ZeroValue(t *testing.T) {
	var zero core.FSType
	if zero != core.FSTypeUnknown {
		t.Errorf("zero FSType = %d, want FSTypeUnknown", zero)
	}
}

// TestFSType_ProviderAttribute verifies each provider's type shows up as the
// provider attribute on System log records.
func TestFSType_ProviderAttribute(t *testing.T) {
	local, err := billyfs.NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	tests := []struct {
		name     string
		provider core.Provider
		fsType   core.FSType
		attr     string
	}{
		{
			name:     "billy local",
			provider: local,
			fsType:   core.FSTypeLocal,
			attr:     "provider=local",
		},
		{
			name:     "billy memory",
			provider: billyfs.NewMemory(),
			fsType:   core.FSTypeMemory,
			attr:     "provider=memory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.provider.Type(); got != tt.fsType {
				t.Fatalf("Type() = %v, want %v", got, tt.fsType)
			}

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			sys := system.New(tt.provider, system.WithLogger(logger))
			sys.Exists(path.New("/missing"))

			if !strings.Contains(buf.String(), tt.attr) {
				t.Errorf("log output %q does not contain %q", buf.String(), tt.attr)
			}
		})
	}
}
