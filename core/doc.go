// Package core provides the provider contracts the system package is built
// on.
//
// This package defines what a filesystem backend must offer so that Path
// values can be inspected, listed and managed independently of where the
// bytes actually live: the host filesystem, an in-memory tree for tests, or
// a go-billy filesystem.
//
// # Design Philosophy
//
//   - Zero behaviour: only interfaces and plain data types
//   - Small required surface: Provider covers what every backend can do
//   - Optional capabilities: use type assertions for SymlinkProvider and
//     FileProvider
//   - Injected process state: the working directory and environment are
//     reached through ProcessContext, never through package globals
//
// # Interface Hierarchy
//
//   - Provider: Stat, Lstat, Canonicalize, OpenDir, Mkdir, Remove, Chmod
//   - DirStream: a single-pass directory handle returned by OpenDir
//   - SymlinkProvider: Symlink, Readlink
//   - FileProvider: OpenFile returning a File
//   - ProcessContext: Getwd, Chdir, LookupEnv
//
// # Checking Optional Capabilities
//
//	if sp, ok := provider.(core.SymlinkProvider); ok {
//	    target, err := sp.Readlink("/etc/localtime")
//	}
//
// # Provider Implementations
//
//   - github.com/jmgilman/syskit/provider/local - host filesystem via x/sys/unix
//   - github.com/jmgilman/syskit/provider/billy - go-billy osfs and memfs
//
// New providers should be validated with the providertest package.
package core
