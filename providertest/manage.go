package providertest

import (
	"testing"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
)

// TestManage tests Mkdir and Remove.
func TestManage(t *testing.T, p core.Provider, base string) {
	TestManageWithConfig(t, p, base, Config{})
}

// TestManageWithConfig tests directory creation and removal with behavior
// configuration.
func TestManageWithConfig(t *testing.T, p core.Provider, base string, config Config) {
	run(t, "Manage", "Mkdir", config, func(t *testing.T) {
		testManageMkdir(t, p, base)
	})
	run(t, "Manage", "MkdirExists", config, func(t *testing.T) {
		testManageMkdirExists(t, p, base)
	})
	run(t, "Manage", "MkdirMissingParent", config, func(t *testing.T) {
		testManageMkdirMissingParent(t, p, base)
	})
	run(t, "Manage", "RemoveFile", config, func(t *testing.T) {
		testManageRemoveFile(t, p, base)
	})
	run(t, "Manage", "RemoveEmptyDirectory", config, func(t *testing.T) {
		testManageRemoveEmptyDir(t, p, base)
	})
	run(t, "Manage", "RemoveNonEmpty", config, func(t *testing.T) {
		testManageRemoveNonEmpty(t, p, base)
	})
	run(t, "Manage", "RemoveNotExist", config, func(t *testing.T) {
		testManageRemoveNotExist(t, p, base)
	})
}

func testManageMkdir(t *testing.T, p core.Provider, base string) {
	name := join(base, "newdir")
	if err := p.Mkdir(name, 0o755); err != nil {
		t.Fatalf("Mkdir(%s): got error %v, want nil", name, err)
	}

	md, err := p.Stat(name)
	if err != nil {
		t.Fatalf("Stat(%s): got error %v, want nil", name, err)
	}
	if !md.IsDir() {
		t.Errorf("Stat(%s): Type = %s, want directory", name, md.Type)
	}
}

func testManageMkdirExists(t *testing.T, p core.Provider, base string) {
	dir := join(base, "existing")
	mkdir(t, p, dir)
	expectCode(t, "Mkdir(existing dir)", p.Mkdir(dir, 0o755), errors.CodeAlreadyExists)

	file := join(base, "existing.txt")
	writeFile(t, p, file, []byte("x"))
	expectCode(t, "Mkdir(existing file)", p.Mkdir(file, 0o755), errors.CodeAlreadyExists)
}

func testManageMkdirMissingParent(t *testing.T, p core.Provider, base string) {
	name := join(join(base, "nope"), "child")
	expectCode(t, "Mkdir(nope/child)", p.Mkdir(name, 0o755), errors.CodeNotFound)
}

func testManageRemoveFile(t *testing.T, p core.Provider, base string) {
	name := join(base, "remove.txt")
	writeFile(t, p, name, []byte("bye"))

	if err := p.Remove(name); err != nil {
		t.Fatalf("Remove(%s): got error %v, want nil", name, err)
	}
	_, err := p.Lstat(name)
	expectCode(t, "Lstat after Remove", err, errors.CodeNotFound)
}

func testManageRemoveEmptyDir(t *testing.T, p core.Provider, base string) {
	name := join(base, "emptydir")
	mkdir(t, p, name)

	if err := p.Remove(name); err != nil {
		t.Fatalf("Remove(%s): got error %v, want nil", name, err)
	}
	_, err := p.Stat(name)
	expectCode(t, "Stat after Remove", err, errors.CodeNotFound)
}

func testManageRemoveNonEmpty(t *testing.T, p core.Provider, base string) {
	dir := join(base, "full")
	mkdir(t, p, dir)
	writeFile(t, p, join(dir, "keep.txt"), []byte("x"))

	expectCode(t, "Remove(full)", p.Remove(dir), errors.CodeNotEmpty)

	if _, err := p.Stat(join(dir, "keep.txt")); err != nil {
		t.Errorf("Stat(full/keep.txt) after failed Remove: got error %v, want nil", err)
	}
}

func testManageRemoveNotExist(t *testing.T, p core.Provider, base string) {
	expectCode(t, "Remove(missing)", p.Remove(join(base, "missing")), errors.CodeNotFound)
}
