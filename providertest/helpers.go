package providertest

import (
	"os"
	"testing"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
)

// join appends name to dir with a single separator.
func join(dir, name string) string {
	if dir == "/" {
		return "/" + name
	}
	return dir + "/" + name
}

// writeFile creates name with the given content, failing the test if the
// provider cannot create files.
func writeFile(t *testing.T, p core.Provider, name string, data []byte) {
	t.Helper()

	fp, ok := p.(core.FileProvider)
	if !ok {
		t.Skip("FileProvider not supported")
		return
	}
	f, err := fp.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%s): setup failed: %v", name, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		t.Fatalf("Write(%s): setup failed: %v", name, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(%s): setup failed: %v", name, err)
	}
}

// mkdir creates a directory, failing the test on error.
func mkdir(t *testing.T, p core.Provider, name string) {
	t.Helper()
	if err := p.Mkdir(name, 0o755); err != nil {
		t.Fatalf("Mkdir(%s): setup failed: %v", name, err)
	}
}

// expectCode reports an error unless err carries the wanted taxonomy code.
func expectCode(t *testing.T, call string, err error, want errors.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: got nil error, want %s", call, want)
		return
	}
	if got := errors.GetCode(err); got != want {
		t.Errorf("%s: got code %s (%v), want %s", call, got, err, want)
	}
}
