package providertest

import (
	"testing"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
)

// TestSymlink tests symbolic link operations.
// Uses type assertion - skips if the provider doesn't implement
// core.SymlinkProvider.
func TestSymlink(t *testing.T, p core.Provider, base string) {
	TestSymlinkWithConfig(t, p, base, Config{})
}

// TestSymlinkWithConfig tests symbolic links with behavior configuration.
func TestSymlinkWithConfig(t *testing.T, p core.Provider, base string, config Config) {
	sp, ok := p.(core.SymlinkProvider)
	if !ok {
		t.Skip("SymlinkProvider not supported")
		return
	}

	run(t, "Symlink", "CreateAndReadlink", config, func(t *testing.T) {
		testSymlinkCreate(t, p, sp, base)
	})
	run(t, "Symlink", "LstatDoesNotFollow", config, func(t *testing.T) {
		testSymlinkLstat(t, p, sp, base)
	})
	run(t, "Symlink", "Broken", config, func(t *testing.T) {
		testSymlinkBroken(t, p, sp, base)
	})
	run(t, "Symlink", "RemoveKeepsTarget", config, func(t *testing.T) {
		testSymlinkRemove(t, p, sp, base)
	})
	run(t, "Symlink", "Exists", config, func(t *testing.T) {
		testSymlinkExists(t, p, sp, base)
	})
}

func testSymlinkCreate(t *testing.T, p core.Provider, sp core.SymlinkProvider, base string) {
	target := join(base, "target.txt")
	link := join(base, "link.txt")
	writeFile(t, p, target, []byte("target"))

	if err := sp.Symlink(target, link); err != nil {
		t.Fatalf("Symlink(%s, %s): got error %v, want nil", target, link, err)
	}
	got, err := sp.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink(%s): got error %v, want nil", link, err)
	}
	if got != target {
		t.Errorf("Readlink(%s) = %q, want %q", link, got, target)
	}
}

func testSymlinkLstat(t *testing.T, p core.Provider, sp core.SymlinkProvider, base string) {
	dir := join(base, "realdir")
	link := join(base, "dirlink")
	mkdir(t, p, dir)
	if err := sp.Symlink(dir, link); err != nil {
		t.Fatalf("Symlink(%s, %s): setup failed: %v", dir, link, err)
	}

	md, err := p.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat(%s): got error %v, want nil", link, err)
	}
	if md.Type != core.FileTypeSymlink {
		t.Errorf("Lstat(%s): Type = %s, want symlink", link, md.Type)
	}

	md, err = p.Stat(link)
	if err != nil {
		t.Fatalf("Stat(%s): got error %v, want nil", link, err)
	}
	if md.Type != core.FileTypeDirectory {
		t.Errorf("Stat(%s): Type = %s, want directory", link, md.Type)
	}
}

func testSymlinkBroken(t *testing.T, p core.Provider, sp core.SymlinkProvider, base string) {
	link := join(base, "broken")
	if err := sp.Symlink(join(base, "nowhere"), link); err != nil {
		t.Fatalf("Symlink(nowhere, broken): got error %v, want nil", err)
	}

	if _, err := p.Lstat(link); err != nil {
		t.Errorf("Lstat(broken): got error %v, want nil", err)
	}
	_, err := p.Stat(link)
	expectCode(t, "Stat(broken)", err, errors.CodeNotFound)
}

func testSymlinkRemove(t *testing.T, p core.Provider, sp core.SymlinkProvider, base string) {
	dir := join(base, "kept")
	link := join(base, "kept-link")
	mkdir(t, p, dir)
	writeFile(t, p, join(dir, "child.txt"), []byte("x"))
	if err := sp.Symlink(dir, link); err != nil {
		t.Fatalf("Symlink(%s, %s): setup failed: %v", dir, link, err)
	}

	if err := p.Remove(link); err != nil {
		t.Fatalf("Remove(%s): got error %v, want nil", link, err)
	}
	if _, err := p.Lstat(link); errors.GetCode(err) != errors.CodeNotFound {
		t.Errorf("Lstat(%s) after Remove: got %v, want NOT_FOUND", link, err)
	}
	if _, err := p.Stat(join(dir, "child.txt")); err != nil {
		t.Errorf("Stat(kept/child.txt): target was touched: %v", err)
	}
}

func testSymlinkExists(t *testing.T, p core.Provider, sp core.SymlinkProvider, base string) {
	link := join(base, "taken")
	writeFile(t, p, link, []byte("x"))
	expectCode(t, "Symlink onto existing name", sp.Symlink(join(base, "anything"), link), errors.CodeAlreadyExists)
}
