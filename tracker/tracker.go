// Package tracker records which directories a transaction has structurally
// changed so they can be forced to stable storage at commit.
//
// The tracker never touches the file system. Callers report each create,
// delete and rename as they perform it and hand the tracker to Commit once
// the transaction's file contents are durable:
//
//	tr := tracker.New()
//	tr.Created("/data/store/a.tmp")
//	tr.Renamed("/data/store/a.tmp", "/data/store/a")
//	if err := tr.Commit(dirforce.Default); err != nil {
//	    // not durable: do not report the transaction committed
//	}
package tracker

import (
	"path/filepath"
	"strings"
	"sync"
)

// Forcer flushes an ordered batch of directories. *dirforce.Forcer satisfies it.
type Forcer interface {
	ForceDirectories(paths []string) error
}

// Tracker is a deduplicated, insertion-ordered set of directories with
// pending metadata changes. It is safe for concurrent use. The zero value
// is an empty Tracker.
type Tracker struct {
	mu    sync.Mutex
	dirs  []string
	index map[string]int
}

// New creates an empty Tracker.
func New() *Tracker {
	return &Tracker{index: make(map[string]int)}
}

// Add marks dir itself as having pending metadata changes.
func (t *Tracker) Add(dir string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.add(filepath.Clean(dir))
}

// Created records that path (a file or directory) was created.
func (t *Tracker) Created(path string) {
	t.Add(filepath.Dir(filepath.Clean(path)))
}

// Deleted records that path was removed. Tracked directories at or below
// path are dropped, since they no longer exist to be flushed.
func (t *Tracker) Deleted(path string) {
	p := filepath.Clean(path)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.add(filepath.Dir(p))
	for i := 0; i < len(t.dirs); {
		if _, ok := descendant(t.dirs[i], p); ok {
			t.remove(t.dirs[i])
			continue
		}
		i++
	}
}

// Renamed records that src was moved to dst. Both parents are tracked, and
// any tracked directory at or below src is rewritten to its new location
// under dst.
func (t *Tracker) Renamed(src, dst string) {
	src = filepath.Clean(src)
	dst = filepath.Clean(dst)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.add(filepath.Dir(src))
	t.add(filepath.Dir(dst))
	if src == dst {
		return
	}

	for i := 0; i < len(t.dirs); {
		rel, ok := descendant(t.dirs[i], src)
		if !ok {
			i++
			continue
		}
		if t.replace(i, filepath.Join(dst, rel)) {
			i++
		}
	}
}

// Dirs returns the tracked directories in the order they were first recorded.
func (t *Tracker) Dirs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.dirs))
	copy(out, t.dirs)
	return out
}

// Len returns the number of tracked directories.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.dirs)
}

// Reset forgets every tracked directory.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dirs = nil
	t.index = make(map[string]int)
}

// Commit forces every tracked directory with f. The set is cleared only when
// the whole batch succeeded, so a failed commit can be inspected or retried
// by the caller.
func (t *Tracker) Commit(f Forcer) error {
	dirs := t.Dirs()
	if err := f.ForceDirectories(dirs); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Keep anything recorded while the batch was running.
	for _, d := range dirs {
		t.remove(d)
	}
	return nil
}

func (t *Tracker) add(dir string) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if _, ok := t.index[dir]; ok {
		return
	}
	t.index[dir] = len(t.dirs)
	t.dirs = append(t.dirs, dir)
}

func (t *Tracker) remove(dir string) {
	i, ok := t.index[dir]
	if !ok {
		return
	}
	delete(t.index, dir)
	t.dirs = append(t.dirs[:i], t.dirs[i+1:]...)
	for j := i; j < len(t.dirs); j++ {
		t.index[t.dirs[j]] = j
	}
}

// replace renames the entry at i in place. If the new name is already
// tracked the entry is dropped instead and replace reports false.
func (t *Tracker) replace(i int, dir string) bool {
	old := t.dirs[i]
	if _, ok := t.index[dir]; ok {
		t.remove(old)
		return false
	}
	delete(t.index, old)
	t.dirs[i] = dir
	t.index[dir] = i
	return true
}

// descendant reports whether path equals ancestor or lies beneath it, and
// returns path relative to ancestor.
func descendant(path, ancestor string) (string, bool) {
	if path == ancestor {
		return ".", true
	}
	prefix := ancestor
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	return path[len(prefix):], true
}
