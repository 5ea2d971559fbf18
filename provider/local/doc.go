// Package local provides a core.Provider for the host filesystem.
//
// System calls go through golang.org/x/sys/unix, and every failure is
// translated into the errors taxonomy with the raw errno attached.
//
// # Removal
//
// Remove behaves like remove(3): it unlinks files and symbolic links and
// removes empty directories. It never follows a link.
//
// # Directory Streams
//
// OpenDir keeps the directory open and reads entry names in batches of
// WithBatchSize entries, so large directories are never held in memory at
// once. Streams must be closed.
//
// # Process State
//
// Process exposes the real working directory and environment. Chdir changes
// the working directory of the whole process.
package local
