package providertest

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
)

// TestMetadata tests Stat, Lstat and Chmod.
func TestMetadata(t *testing.T, p core.Provider, base string) {
	TestMetadataWithConfig(t, p, base, Config{})
}

// TestMetadataWithConfig tests metadata operations with behavior configuration.
func TestMetadataWithConfig(t *testing.T, p core.Provider, base string, config Config) {
	run(t, "Metadata", "StatFile", config, func(t *testing.T) {
		testMetadataStatFile(t, p, base)
	})
	run(t, "Metadata", "StatDirectory", config, func(t *testing.T) {
		testMetadataStatDirectory(t, p, base)
	})
	run(t, "Metadata", "StatNotExist", config, func(t *testing.T) {
		testMetadataStatNotExist(t, p, base)
	})
	run(t, "Metadata", "StatThroughFile", config, func(t *testing.T) {
		testMetadataStatThroughFile(t, p, base)
	})
	run(t, "Metadata", "Chmod", config, func(t *testing.T) {
		testMetadataChmod(t, p, base)
	})
}

func testMetadataStatFile(t *testing.T, p core.Provider, base string) {
	name := join(base, "stat.txt")
	data := []byte("metadata payload")
	writeFile(t, p, name, data)

	for _, call := range []struct {
		op string
		fn func(string) (core.Metadata, error)
	}{{"Stat", p.Stat}, {"Lstat", p.Lstat}} {
		md, err := call.fn(name)
		if err != nil {
			t.Errorf("%s(%s): got error %v, want nil", call.op, name, err)
			continue
		}
		if md.Type != core.FileTypeRegular {
			t.Errorf("%s(%s): Type = %s, want regular", call.op, name, md.Type)
		}
		if md.Size != int64(len(data)) {
			t.Errorf("%s(%s): Size = %d, want %d", call.op, name, md.Size, len(data))
		}
	}
}

func testMetadataStatDirectory(t *testing.T, p core.Provider, base string) {
	name := join(base, "statdir")
	mkdir(t, p, name)

	md, err := p.Stat(name)
	if err != nil {
		t.Fatalf("Stat(%s): got error %v, want nil", name, err)
	}
	if !md.IsDir() {
		t.Errorf("Stat(%s): Type = %s, want directory", name, md.Type)
	}
	if md.Perm&^fs.ModePerm != 0 {
		t.Errorf("Stat(%s): Perm = %v, want permission bits only", name, md.Perm)
	}
}

func testMetadataStatNotExist(t *testing.T, p core.Provider, base string) {
	name := join(base, "missing")

	_, err := p.Stat(name)
	expectCode(t, "Stat(missing)", err, errors.CodeNotFound)
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(missing): got error %v, want fs.ErrNotExist", err)
	}

	_, err = p.Lstat(name)
	expectCode(t, "Lstat(missing)", err, errors.CodeNotFound)
}

func testMetadataStatThroughFile(t *testing.T, p core.Provider, base string) {
	name := join(base, "plain.txt")
	writeFile(t, p, name, []byte("x"))

	if _, err := p.Stat(join(name, "child")); err == nil {
		t.Errorf("Stat(plain.txt/child): got nil error, want failure")
	}
}

func testMetadataChmod(t *testing.T, p core.Provider, base string) {
	name := join(base, "chmod.txt")
	writeFile(t, p, name, []byte("x"))

	err := p.Chmod(name, 0o640)
	if errors.GetCode(err) == errors.CodeUnsupported {
		t.Skip("Chmod not supported")
		return
	}
	if err != nil {
		t.Fatalf("Chmod(%s, 0640): got error %v, want nil", name, err)
	}

	md, err := p.Stat(name)
	if err != nil {
		t.Fatalf("Stat(%s): got error %v, want nil", name, err)
	}
	if md.Perm != 0o640 {
		t.Errorf("Stat(%s) after Chmod: Perm = %o, want 640", name, md.Perm)
	}

	expectCode(t, "Chmod(missing)", p.Chmod(join(base, "missing"), 0o600), errors.CodeNotFound)
}
