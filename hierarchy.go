package dirforce

import (
	"path/filepath"
	"slices"
)

// ForceHierarchy flushes dir and every one of its ancestors, starting at the
// file system root and ending with dir itself. Use it after creating a
// directory chain (for example a data home) so that each new entry is
// durable in its parent.
func (f *Forcer) ForceHierarchy(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return &FlushError{Path: dir, Index: 0, Cause: OpenFailed, Err: err}
	}
	return f.ForceDirectories(Ancestors(abs))
}

// Ancestors returns the chain of directories from the root of path down to
// path itself. path is cleaned but not made absolute.
func Ancestors(path string) []string {
	p := filepath.Clean(path)
	chain := []string{p}
	for {
		parent := filepath.Dir(p)
		if parent == p || parent == "." {
			break
		}
		chain = append(chain, parent)
		p = parent
	}
	slices.Reverse(chain)
	return chain
}

// ForceTree flushes root and every directory beneath it. Parents are
// flushed before their children, siblings in lexical order. Symbolic links
// are not followed.
//
// The tree is listed before anything is flushed; a directory that cannot be
// listed fails the call with OpenFailed and nothing is flushed.
func (f *Forcer) ForceTree(root string) error {
	dirs, err := f.listTree(root)
	if err != nil {
		return err
	}
	return f.ForceDirectories(dirs)
}

func (f *Forcer) listTree(root string) ([]string, error) {
	var dirs []string
	var walk func(dir string) error
	walk = func(dir string) error {
		dirs = append(dirs, dir)
		entries, err := f.fs.ReadDir(dir)
		if err != nil {
			ferr := &FlushError{Path: dir, Index: len(dirs) - 1, Cause: OpenFailed, Err: err}
			f.logger.LogOpenFailed(dir, ferr.Index, err)
			return ferr
		}
		for _, e := range entries {
			if e.IsDir() {
				if err := walk(filepath.Join(dir, e.Name())); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return dirs, nil
}
