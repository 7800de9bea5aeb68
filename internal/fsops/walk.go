package fsops

import (
	"iter"
	"os"
	"path/filepath"
)

// Entry is one path produced by Walk. Dir and Name are cached splits of
// Path. Err is set when the entry could not be read; such entries are
// reported by callers and otherwise ignored.
type Entry struct {
	Path  string
	Dir   string
	Name  string
	IsDir bool
	Err   error
}

// NewEntry builds an Entry for path.
func NewEntry(path string, isDir bool) Entry {
	return Entry{
		Path:  path,
		Dir:   filepath.Dir(path),
		Name:  filepath.Base(path),
		IsDir: isDir,
	}
}

// Walk walks the tree rooted at root in lexical order and yields every
// entry, root included. Symlinks are yielded as non-directories and are
// not followed. The returned sequence is single-use.
func (fs *RealFS) Walk(root string) (iter.Seq[Entry], error) {
	root = filepath.Clean(root)
	if _, err := os.Lstat(root); err != nil {
		return nil, err
	}

	return func(yield func(Entry) bool) {
		_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			isDir := d != nil && d.IsDir()
			entry := NewEntry(path, isDir)
			if err != nil {
				entry.Err = err
			}
			if !yield(entry) {
				return filepath.SkipAll
			}
			return nil
		})
	}, nil
}
