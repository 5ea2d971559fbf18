// Package path provides an immutable value type for Unix-style pathnames.
//
// Unlike the standard library's path package, which works on raw strings,
// this package wraps the pathname in a Path value whose operations never
// mutate it and never touch the filesystem. Filesystem-dependent queries
// (existence, permissions, directory listing) live in the system package and
// take a Path as input.
//
// # Pathname Syntax
//
//   - Components are separated by '/'. Repeated separators collapse.
//   - The two-byte sequence `\/` is an escaped separator: it is literal
//     content of the current component. Any other backslash is ordinary data.
//   - A pathname starting with '/' is absolute; anything else is relative.
//   - Trailing separators are stripped when a Path is constructed.
//   - A component cannot end in a backslash and be followed by another
//     component, since `\/` is always read as an escape. Joining onto such a
//     path yields a string the operating system resolves as intended, but
//     Components reports the two names as one.
//
// # Operations
//
//	p := path.New("/srv//www/./site/../index.html")
//	p.Components()  // ["srv", "www", ".", "site", "..", "index.html"]
//	p.Normalized()  // "/srv/www/index.html"
//	p.Normalized().Relative(path.New("/srv/logs")) // "../www/index.html"
//
// Joining follows shell cd semantics: an absolute fragment discards
// everything to its left.
//
//	path.New("/foo").Joined(path.New("bar"), path.New("/etc")) // "/etc"
//
// # Equality
//
// Two paths are equal when their strings match, or when they have the same
// relativity and the same components. "/a//b" equals "/a/b". Equality is not
// normalization: "/a/./b" and "/a/b" differ. Hash and Key are consistent
// with Equal.
//
// # Concurrency
//
// Path values are immutable and safe to share between goroutines.
package path
