package path

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Path is an immutable Unix-style pathname.
//
// A Path only represents a location; it says nothing about whether the
// location exists. The stored pathname is the sole source of truth and every
// transformation returns a new Path.
//
// Trailing separators are stripped at construction, so "/foo/bar/" and
// "/foo/bar" are the same value. The root "/" is kept as is, and an escaped
// trailing separator (`foo\/`) is component content and is never stripped.
//
// The zero value is the empty relative path.
type Path struct {
	name string
}

// Root is the absolute root path "/".
var Root = Path{name: "/"}

// New constructs a Path from a pathname.
func New(name string) Path {
	return Path{name: trimTrailing(name)}
}

// Join constructs a Path from the first element joined with the rest, with
// the same override rules as Joined.
//
//	path.Join("/foo", "bar", "baz") // "/foo/bar/baz"
//	path.Join("/foo", "/etc")       // "/etc"
func Join(elem ...string) Path {
	if len(elem) == 0 {
		return Path{}
	}
	others := make([]Path, 0, len(elem)-1)
	for _, e := range elem[1:] {
		others = append(others, New(e))
	}
	return New(elem[0]).Joined(others...)
}

// fromComponents assembles a pathname from already-scanned components.
func fromComponents(absolute bool, components []string) Path {
	joined := strings.Join(components, string(Separator))
	if absolute {
		return Path{name: string(Separator) + joined}
	}
	return Path{name: joined}
}

// String returns the pathname.
func (p Path) String() string {
	return p.name
}

// Components returns the components of the pathname, left to right.
// The root path has no components.
func (p Path) Components() []string {
	return scan(p.name)
}

// IsRelative reports whether the pathname does not start with a separator.
func (p Path) IsRelative() bool {
	return !strings.HasPrefix(p.name, string(Separator))
}

// IsAbsolute reports whether the pathname starts with a separator.
func (p Path) IsAbsolute() bool {
	return !p.IsRelative()
}

// IsRoot reports whether the path denotes the root directory.
func (p Path) IsRoot() bool {
	return p.IsAbsolute() && len(p.Components()) == 0
}

// IsEmpty reports whether the pathname is the empty string.
func (p Path) IsEmpty() bool {
	return p.name == ""
}

// Filename returns the last component. It reports false for paths without
// components (the root and the empty path).
func (p Path) Filename() (string, bool) {
	components := p.Components()
	if len(components) == 0 {
		return "", false
	}
	return components[len(components)-1], true
}

// Extension returns the part of the filename after its last '.'.
// It reports false when there is no filename or the filename has no '.'.
//
//	path.New("/a/archive.tar.gz").Extension() // "gz", true
//	path.New("/a/.bashrc").Extension()        // "bashrc", true
//	path.New("/a/Makefile").Extension()       // "", false
func (p Path) Extension() (string, bool) {
	filename, ok := p.Filename()
	if !ok {
		return "", false
	}
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return "", false
	}
	return filename[i+1:], true
}

// Parent returns the path of the directory containing p.
//
// The root has no parent. Neither does a relative path with a single
// component, since the enclosing directory cannot be expressed without
// knowing the working directory.
func (p Path) Parent() (Path, bool) {
	components := p.Components()
	n := len(components)
	if p.IsAbsolute() {
		if n == 0 {
			return Path{}, false
		}
		return fromComponents(true, components[:n-1]), true
	}
	if n <= 1 {
		return Path{}, false
	}
	return fromComponents(false, components[:n-1]), true
}

// Normalized returns the path with redundant separators, "." components and
// resolvable ".." components removed.
//
// This is a pure string transformation: it neither consults the filesystem
// nor follows symbolic links. ".." that climbs above the start of a relative
// path is kept, so the result still denotes the same location once a base
// directory is supplied. ".." at the root of an absolute path is dropped.
// A relative path that normalizes to nothing becomes ".".
//
//	path.New("foo/../bar").Normalized()    // "bar"
//	path.New("../foo/./bar").Normalized()  // "../foo/bar"
//	path.New("/../etc//hosts").Normalized() // "/etc/hosts"
func (p Path) Normalized() Path {
	components := p.Components()
	absolute := p.IsAbsolute()
	stack := make([]string, 0, len(components))
	for _, c := range components {
		switch c {
		case ".":
		case "..":
			if n := len(stack); n > 0 && stack[n-1] != ".." {
				stack = stack[:n-1]
			} else if !absolute {
				stack = append(stack, "..")
			}
		default:
			stack = append(stack, c)
		}
	}
	if !absolute && len(stack) == 0 {
		return Path{name: "."}
	}
	return fromComponents(absolute, stack)
}

// Joined returns p joined with one or more paths, folding left.
//
// A relative fragment is appended with a single separator. An absolute
// fragment replaces everything accumulated so far, like an absolute argument
// to cd. Empty fragments are skipped. No normalization is performed.
//
// When the accumulated path ends in a data backslash, the inserted separator
// reads as the escape `\/`, so the last component and the fragment merge into
// one component: New(`x\`).Joined(New("y")) is `x\/y` with the single
// component `x\/y`. The string is still the right name for the operating
// system; only Components and Filename see the merge.
//
//	p := path.New("/foo/bar")
//	p.Joined(path.New("baz/"), path.New("qux/quux/"))  // "/foo/bar/baz/qux/quux"
//	p.Joined(path.New("baz"), path.New("/qux/quux/"))  // "/qux/quux"
func (p Path) Joined(others ...Path) Path {
	result := p.name
	for _, other := range others {
		switch {
		case other.name == "":
		case other.IsAbsolute(), result == "":
			result = other.name
		case result == string(Separator):
			result += other.name
		default:
			result += string(Separator) + other.name
		}
	}
	return Path{name: result}
}

// Relative returns a path that resolves to p when interpreted from base.
// base is expected to denote a directory.
//
// If p is absolute and base is relative there is no well-defined answer
// and p is returned unchanged. The computation is purely lexical: both
// paths should be normalized first if they may contain "." or "..".
//
//	path.New("/foo/bar").Relative(path.New("/foo")) // "bar"
//	path.New("foo/bar").Relative(path.New("qux"))   // "../foo/bar"
//	path.New("/a").Relative(path.New("/a"))         // "."
func (p Path) Relative(base Path) Path {
	if p.IsAbsolute() && base.IsRelative() {
		return p
	}

	lhs := p.Components()
	rhs := base.Components()
	i := commonPrefixLen(lhs, rhs)

	rel := make([]string, 0, len(rhs)-i+len(lhs)-i)
	for range rhs[i:] {
		rel = append(rel, "..")
	}
	rel = append(rel, lhs[i:]...)

	if len(rel) == 0 {
		return Path{name: "."}
	}
	return fromComponents(false, rel)
}

// PrefixShared returns the longest run of leading components shared by p and
// other. It reports false when the paths differ in relativity or share no
// component.
func (p Path) PrefixShared(other Path) (Path, bool) {
	if p.IsRelative() != other.IsRelative() {
		return Path{}, false
	}
	lhs := p.Components()
	i := commonPrefixLen(lhs, other.Components())
	if i == 0 {
		return Path{}, false
	}
	return fromComponents(p.IsAbsolute(), lhs[:i]), true
}

// HasPrefix reports whether prefix has the same relativity as p and its
// components are a leading run of p's components. Comparison is by
// component, so "/foobar" does not have the prefix "/foo", and every
// absolute path has the prefix "/".
func (p Path) HasPrefix(prefix Path) bool {
	if p.IsRelative() != prefix.IsRelative() {
		return false
	}
	components := p.Components()
	want := prefix.Components()
	return len(want) <= len(components) && commonPrefixLen(components, want) == len(want)
}

// HasSuffix reports whether suffix's components are a trailing run of p's
// components. An absolute suffix only matches a path equal to it.
func (p Path) HasSuffix(suffix Path) bool {
	if suffix.IsAbsolute() {
		return p.Equal(suffix)
	}
	components := p.Components()
	want := suffix.Components()
	if len(want) > len(components) {
		return false
	}
	tail := components[len(components)-len(want):]
	return commonPrefixLen(tail, want) == len(want)
}

// Equal reports whether p and other denote the same pathname: either their
// strings are identical, or they have the same relativity and identical
// components. Paths differing only in redundant separators are equal.
// Equal does not normalize, so "a/./b" and "a/b" are different paths.
func (p Path) Equal(other Path) bool {
	return p.name == other.name || p.Key() == other.Key()
}

// Key returns the canonical pathname: the components of p joined by single
// separators, with a leading separator if p is absolute. Two paths are Equal
// exactly when their keys are identical, so Key is suitable as a map key.
func (p Path) Key() string {
	return fromComponents(p.IsAbsolute(), p.Components()).name
}

// Hash returns a 64-bit hash of the canonical pathname.
// Equal paths always hash equally.
func (p Path) Hash() uint64 {
	return xxhash.Sum64String(p.Key())
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same rules as New.
func (p *Path) UnmarshalText(text []byte) error {
	*p = New(string(text))
	return nil
}

func commonPrefixLen(a, b []string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
