// Package system performs the Path operations that need a filesystem.
//
// A System binds a core.Provider (where the bytes live), a
// core.ProcessContext (working directory and environment) and a logger:
//
//	provider := local.New()
//	sys := system.New(provider,
//	    system.WithProcess(local.Process{}),
//	    system.WithLogger(logger),
//	)
//
//	if sys.IsDirectory(path.New("/etc")) {
//	    entries, err := sys.Entries(path.New("/etc"))
//	}
//
// # Failure Policy
//
// Predicates (Exists, IsFile, IsDirectory, IsSymbolicLink) never fail: a
// metadata query that cannot be answered yields false and is logged at debug
// level. Every other operation returns an errors.Error from the provider.
// Permissions and SetPermissions return errors rather than aborting, and
// Resolved fails with NOT_FOUND for a missing path.
//
// # Directory Iteration
//
// OpenDir returns a DirectoryIterator owning one directory handle. Prefer
// ForEachEntry or a range over All, which release the handle on every exit
// path:
//
//	it, err := sys.OpenDir(dir)
//	if err != nil {
//	    return err
//	}
//	for entry := range it.All() {
//	    fmt.Println(entry)
//	}
//	return it.Err()
//
// # Removal
//
// Remove with recursively set walks depth first, stops at the first failure
// and never follows symbolic links. It is not transactional.
package system
