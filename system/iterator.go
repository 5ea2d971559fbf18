package system

import (
	stderrors "errors"
	"io"
	"iter"
	"log/slog"
	"runtime"
	"sync"

	"github.com/jmgilman/syskit/core"
	"github.com/jmgilman/syskit/errors"
	"github.com/jmgilman/syskit/path"
)

type iteratorState int

const (
	stateOpen iteratorState = iota
	stateExhausted
	stateClosed
)

// dirHandle owns a directory stream and releases it exactly once.
// It is kept apart from DirectoryIterator so a cleanup can hold it without
// keeping the iterator reachable.
type dirHandle struct {
	stream core.DirStream
	name   string
	logger *slog.Logger

	once sync.Once
	err  error
}

func (h *dirHandle) release() error {
	h.once.Do(func() {
		if err := h.stream.Close(); err != nil {
			h.err = errors.Translate("closedir", h.name, err)
		}
	})
	return h.err
}

// DirectoryIterator yields the entries of a directory as paths joined onto
// the directory's path. "." and ".." are never yielded. For a directory
// whose name ends in a backslash, each yielded path names the right file but
// its last two components read as one; see path.Path.Joined.
//
// An iterator starts open. Reaching the end of the directory, or a read
// error, exhausts it and releases its handle; Close releases the handle of
// an open iterator. Either way the handle is released exactly once, and an
// iterator dropped without Close is released when it is garbage collected.
//
// A DirectoryIterator is not safe for concurrent use. Use one iterator per
// goroutine.
type DirectoryIterator struct {
	base    path.Path
	handle  *dirHandle
	state   iteratorState
	err     error
	cleanup runtime.Cleanup
}

func newDirectoryIterator(base path.Path, stream core.DirStream, logger *slog.Logger) *DirectoryIterator {
	h := &dirHandle{stream: stream, name: base.String(), logger: logger}
	it := &DirectoryIterator{base: base, handle: h}
	it.cleanup = runtime.AddCleanup(it, func(h *dirHandle) {
		h.logger.Warn("directory iterator was not closed", "path", h.name)
		_ = h.release()
	}, h)
	return it
}

// OpenDir opens the directory at p for iteration.
// The iterator must be exhausted or closed.
func (s *System) OpenDir(p path.Path) (*DirectoryIterator, error) {
	stream, err := s.provider.OpenDir(p.String())
	if err != nil {
		return nil, err
	}
	return newDirectoryIterator(p, stream, s.logger), nil
}

// ForEachEntry calls fn for every entry of the directory at p. The handle
// is released before ForEachEntry returns. Iteration stops at the first
// error from fn, which is returned.
func (s *System) ForEachEntry(p path.Path, fn func(path.Path) error) (err error) {
	it, err := s.OpenDir(p)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := it.Close(); err == nil {
			err = cerr
		}
	}()

	for entry := range it.All() {
		if err := fn(entry); err != nil {
			return err
		}
	}
	return it.Err()
}

// Entries returns every entry of the directory at p, in the order the
// provider yields them.
func (s *System) Entries(p path.Path) ([]path.Path, error) {
	var entries []path.Path
	err := s.ForEachEntry(p, func(entry path.Path) error {
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Base returns the path of the directory being iterated.
func (it *DirectoryIterator) Base() path.Path {
	return it.base
}

// Next returns the next entry. It reports false once the iterator is
// exhausted or closed, and keeps doing so on every later call.
func (it *DirectoryIterator) Next() (path.Path, bool) {
	for it.state == stateOpen {
		name, err := it.handle.stream.Next()
		if err != nil {
			if !stderrors.Is(err, io.EOF) {
				it.err = errors.Translate("readdir", it.base.String(), err)
			}
			it.finish(stateExhausted)
			return path.Path{}, false
		}
		if name == "." || name == ".." {
			continue
		}
		return it.base.Joined(path.New(name)), true
	}
	return path.Path{}, false
}

// All returns a single-use sequence over the remaining entries.
// The iterator is closed when the loop ends, including on break.
func (it *DirectoryIterator) All() iter.Seq[path.Path] {
	return func(yield func(path.Path) bool) {
		defer func() { _ = it.Close() }()
		for {
			entry, ok := it.Next()
			if !ok || !yield(entry) {
				return
			}
		}
	}
}

// Err returns the error that ended iteration early, if any. Reaching the
// end of the directory is not an error.
func (it *DirectoryIterator) Err() error {
	return it.err
}

// Close releases the directory handle. Closing an exhausted or already
// closed iterator is a no-op.
func (it *DirectoryIterator) Close() error {
	switch it.state {
	case stateOpen:
		return it.finish(stateClosed)
	case stateExhausted:
		it.state = stateClosed
	}
	return nil
}

func (it *DirectoryIterator) finish(state iteratorState) error {
	it.state = state
	it.cleanup.Stop()
	err := it.handle.release()
	if err != nil && it.err == nil {
		it.err = err
	}
	return err
}
