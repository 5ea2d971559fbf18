// Package billy provides a go-billy-backed implementation of
// core.Provider, enabling go-git compatibility.
//
// This package wraps go-billy's osfs (local) and memfs (in-memory)
// implementations, providing a thin adapter layer that implements
// core.Provider, core.SymlinkProvider and core.FileProvider while keeping
// the underlying billy.Filesystem reachable for go-git integration.
//
// Usage:
//
//	// Host directory, with absolute names interpreted below root
//	provider := billy.NewLocal("/srv/data")
//
//	// Unwrap for go-git integration
//	billyFS := provider.Unwrap()
//
// # Memory Filesystem
//
// For testing or temporary storage, use the in-memory filesystem:
//
//	provider := billy.NewMemory(billy.WithEnv(map[string]string{"TMPDIR": "/tmp"}))
//	sys := system.New(provider, system.WithProcess(provider.Process()))
//
// # Working Directory
//
// Billy has no working directory. FS keeps one, starting at "/", and
// resolves relative names against it. Process exposes it as a
// core.ProcessContext together with the environment given by WithEnv.
//
// # Differences From The Host
//
//   - Remove refuses non-empty directories itself since memfs does not.
//   - Neither osfs nor memfs implements billy.Change. Chmod on a NewLocal
//     filesystem therefore changes the host file below root directly;
//     on NewMemory it fails with UNSUPPORTED.
//   - OpenDir takes a snapshot of the directory when it is opened.
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines.
// File handles and directory streams are not.
package billy
