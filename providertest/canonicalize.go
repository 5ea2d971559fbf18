package providertest

import (
	"testing"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
)

// TestCanonicalize tests Canonicalize, including link resolution when the
// provider implements core.SymlinkProvider.
func TestCanonicalize(t *testing.T, p core.Provider, base string) {
	TestCanonicalizeWithConfig(t, p, base, Config{})
}

// TestCanonicalizeWithConfig tests Canonicalize with behavior configuration.
func TestCanonicalizeWithConfig(t *testing.T, p core.Provider, base string, config Config) {
	// base may itself sit below a symbolic link (e.g. /tmp on macOS).
	root, err := p.Canonicalize(base)
	if err != nil {
		t.Fatalf("Canonicalize(%s): got error %v, want nil", base, err)
	}

	run(t, "Canonicalize", "Plain", config, func(t *testing.T) {
		testCanonicalizePlain(t, p, base, root)
	})
	run(t, "Canonicalize", "DotSegments", config, func(t *testing.T) {
		testCanonicalizeDots(t, p, base, root)
	})
	run(t, "Canonicalize", "NotExist", config, func(t *testing.T) {
		testCanonicalizeNotExist(t, p, base)
	})

	sp, ok := p.(core.SymlinkProvider)
	if !ok {
		return
	}
	run(t, "Canonicalize", "ThroughLink", config, func(t *testing.T) {
		testCanonicalizeLink(t, p, sp, base, root)
	})
	run(t, "Canonicalize", "DotDotAfterLink", config, func(t *testing.T) {
		testCanonicalizeDotDotAfterLink(t, p, sp, base, root)
	})
	run(t, "Canonicalize", "Loop", config, func(t *testing.T) {
		testCanonicalizeLoop(t, p, sp, base)
	})
}

func testCanonicalizePlain(t *testing.T, p core.Provider, base, root string) {
	dir := join(base, "plain")
	mkdir(t, p, dir)

	got, err := p.Canonicalize(dir)
	if err != nil {
		t.Fatalf("Canonicalize(%s): got error %v, want nil", dir, err)
	}
	if want := join(root, "plain"); got != want {
		t.Errorf("Canonicalize(%s) = %q, want %q", dir, got, want)
	}
}

func testCanonicalizeDots(t *testing.T, p core.Provider, base, root string) {
	mkdir(t, p, join(base, "x"))
	mkdir(t, p, join(base, "y"))

	name := base + "/./x/../y/"
	got, err := p.Canonicalize(name)
	if err != nil {
		t.Fatalf("Canonicalize(%s): got error %v, want nil", name, err)
	}
	if want := join(root, "y"); got != want {
		t.Errorf("Canonicalize(%s) = %q, want %q", name, got, want)
	}
}

func testCanonicalizeNotExist(t *testing.T, p core.Provider, base string) {
	_, err := p.Canonicalize(join(base, "missing"))
	expectCode(t, "Canonicalize(missing)", err, errors.CodeNotFound)
}

func testCanonicalizeLink(t *testing.T, p core.Provider, sp core.SymlinkProvider, base, root string) {
	dir := join(base, "dest")
	mkdir(t, p, dir)
	writeFile(t, p, join(dir, "file.txt"), []byte("x"))
	if err := sp.Symlink(dir, join(base, "alias")); err != nil {
		t.Fatalf("Symlink(dest, alias): setup failed: %v", err)
	}

	name := join(join(base, "alias"), "file.txt")
	got, err := p.Canonicalize(name)
	if err != nil {
		t.Fatalf("Canonicalize(%s): got error %v, want nil", name, err)
	}
	if want := join(join(root, "dest"), "file.txt"); got != want {
		t.Errorf("Canonicalize(%s) = %q, want %q", name, got, want)
	}
}

func testCanonicalizeDotDotAfterLink(t *testing.T, p core.Provider, sp core.SymlinkProvider, base, root string) {
	outer := join(base, "outer")
	inner := join(outer, "inner")
	mkdir(t, p, outer)
	mkdir(t, p, inner)
	if err := sp.Symlink(inner, join(base, "shortcut")); err != nil {
		t.Fatalf("Symlink(outer/inner, shortcut): setup failed: %v", err)
	}

	name := join(base, "shortcut") + "/.."
	got, err := p.Canonicalize(name)
	if err != nil {
		t.Fatalf("Canonicalize(%s): got error %v, want nil", name, err)
	}
	if want := join(root, "outer"); got != want {
		t.Errorf("Canonicalize(%s) = %q, want %q", name, got, want)
	}
}

func testCanonicalizeLoop(t *testing.T, p core.Provider, sp core.SymlinkProvider, base string) {
	a, b := join(base, "loop-a"), join(base, "loop-b")
	if err := sp.Symlink(b, a); err != nil {
		t.Fatalf("Symlink(loop-b, loop-a): setup failed: %v", err)
	}
	if err := sp.Symlink(a, b); err != nil {
		t.Fatalf("Symlink(loop-a, loop-b): setup failed: %v", err)
	}

	_, err := p.Canonicalize(a)
	expectCode(t, "Canonicalize(loop)", err, errors.CodeInvalidArgument)
}
