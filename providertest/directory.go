package providertest

import (
	stderrors "errors"
	"io"
	"slices"
	"testing"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
)

// TestDirectory tests OpenDir and the returned DirStream.
func TestDirectory(t *testing.T, p core.Provider, base string) {
	TestDirectoryWithConfig(t, p, base, Config{})
}

// TestDirectoryWithConfig tests directory streams with behavior configuration.
func TestDirectoryWithConfig(t *testing.T, p core.Provider, base string, config Config) {
	run(t, "Directory", "Entries", config, func(t *testing.T) {
		testDirectoryEntries(t, p, base)
	})
	run(t, "Directory", "Empty", config, func(t *testing.T) {
		testDirectoryEmpty(t, p, base)
	})
	run(t, "Directory", "NotADirectory", config, func(t *testing.T) {
		testDirectoryNotADirectory(t, p, base)
	})
	run(t, "Directory", "NotExist", config, func(t *testing.T) {
		testDirectoryNotExist(t, p, base)
	})
}

// readNames drains a stream, dropping "." and "..".
func readNames(t *testing.T, stream core.DirStream) []string {
	t.Helper()
	var names []string
	for {
		name, err := stream.Next()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next(): got error %v, want nil or io.EOF", err)
		}
		if name == "." || name == ".." {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func testDirectoryEntries(t *testing.T, p core.Provider, base string) {
	dir := join(base, "listing")
	mkdir(t, p, dir)
	writeFile(t, p, join(dir, "b.txt"), []byte("b"))
	writeFile(t, p, join(dir, "a.txt"), []byte("a"))
	mkdir(t, p, join(dir, "sub"))

	stream, err := p.OpenDir(dir)
	if err != nil {
		t.Fatalf("OpenDir(%s): got error %v, want nil", dir, err)
	}
	defer func() { _ = stream.Close() }()

	got := readNames(t, stream)
	want := []string{"a.txt", "b.txt", "sub"}
	if !slices.Equal(got, want) {
		t.Errorf("OpenDir(%s): entries = %v, want %v", dir, got, want)
	}

	if _, err := stream.Next(); !stderrors.Is(err, io.EOF) {
		t.Errorf("Next() after exhaustion: got %v, want io.EOF", err)
	}
}

func testDirectoryEmpty(t *testing.T, p core.Provider, base string) {
	dir := join(base, "empty")
	mkdir(t, p, dir)

	stream, err := p.OpenDir(dir)
	if err != nil {
		t.Fatalf("OpenDir(%s): got error %v, want nil", dir, err)
	}
	if names := readNames(t, stream); len(names) != 0 {
		t.Errorf("OpenDir(%s): entries = %v, want none", dir, names)
	}
	if err := stream.Close(); err != nil {
		t.Errorf("Close(): got error %v, want nil", err)
	}
}

func testDirectoryNotADirectory(t *testing.T, p core.Provider, base string) {
	name := join(base, "file.txt")
	writeFile(t, p, name, []byte("x"))

	stream, err := p.OpenDir(name)
	if stream != nil {
		_ = stream.Close()
	}
	expectCode(t, "OpenDir(file.txt)", err, errors.CodeNotADirectory)
}

func testDirectoryNotExist(t *testing.T, p core.Provider, base string) {
	stream, err := p.OpenDir(join(base, "missing"))
	if stream != nil {
		_ = stream.Close()
	}
	expectCode(t, "OpenDir(missing)", err, errors.CodeNotFound)
}
