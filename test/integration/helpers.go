package integration

import (
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/namefit/internal/clock"
	"github.com/danieljhkim/namefit/internal/config"
	"github.com/danieljhkim/namefit/internal/engine"
	"github.com/danieljhkim/namefit/internal/fsops"
	"github.com/danieljhkim/namefit/internal/journal"
)

// testFS is a filesystem implementation that keeps a tree in memory.
// Paths in unreadable fail to list during Walk.
type testFS struct {
	files      map[string][]byte
	dirs       map[string]bool
	unreadable map[string]error
}

func newTestFS() *testFS {
	return &testFS{
		files:      make(map[string][]byte),
		dirs:       map[string]bool{"/": true},
		unreadable: make(map[string]error),
	}
}

// addFile creates a file and its parent directories.
func (fs *testFS) addFile(path string) {
	_ = fs.MkdirAll(filepath.Dir(path), 0755)
	fs.files[path] = []byte(path)
}

func (fs *testFS) exists(path string) bool {
	_, isFile := fs.files[path]
	return isFile || fs.dirs[path]
}

// children returns the sorted base names directly under dir.
func (fs *testFS) children(dir string) []string {
	var names []string
	for _, m := range []map[string]bool{fs.dirs, fileSet(fs.files)} {
		for p := range m {
			if p != dir && filepath.Dir(p) == dir {
				names = append(names, filepath.Base(p))
			}
		}
	}
	slices.Sort(names)
	return names
}

func fileSet(files map[string][]byte) map[string]bool {
	set := make(map[string]bool, len(files))
	for p := range files {
		set[p] = true
	}
	return set
}

// tree returns every path under root, sorted.
func (fs *testFS) tree(root string) []string {
	var paths []string
	prefix := root + string(filepath.Separator)
	for _, m := range []map[string]bool{fs.dirs, fileSet(fs.files)} {
		for p := range m {
			if strings.HasPrefix(p, prefix) {
				paths = append(paths, strings.TrimPrefix(p, prefix))
			}
		}
	}
	slices.Sort(paths)
	return paths
}

func (fs *testFS) Walk(root string) (iter.Seq[fsops.Entry], error) {
	root = filepath.Clean(root)
	if !fs.exists(root) {
		return nil, &os.PathError{Op: "lstat", Path: root, Err: os.ErrNotExist}
	}
	return func(yield func(fsops.Entry) bool) {
		fs.walk(root, yield)
	}, nil
}

func (fs *testFS) walk(path string, yield func(fsops.Entry) bool) bool {
	entry := fsops.NewEntry(path, fs.dirs[path])
	if !yield(entry) {
		return false
	}
	if !entry.IsDir {
		return true
	}
	if err, ok := fs.unreadable[path]; ok {
		entry.Err = err
		return yield(entry)
	}
	for _, name := range fs.children(path) {
		if !fs.walk(filepath.Join(path, name), yield) {
			return false
		}
	}
	return true
}

func (fs *testFS) Rename(oldpath, newpath string) error {
	if !fs.exists(oldpath) {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: os.ErrNotExist}
	}
	if fs.exists(newpath) {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: os.ErrExist}
	}

	prefix := oldpath + string(filepath.Separator)
	move := func(p string) (string, bool) {
		switch {
		case p == oldpath:
			return newpath, true
		case strings.HasPrefix(p, prefix):
			return newpath + p[len(oldpath):], true
		}
		return "", false
	}

	files := make(map[string][]byte, len(fs.files))
	for p, data := range fs.files {
		if np, ok := move(p); ok {
			p = np
		}
		files[p] = data
	}
	dirs := make(map[string]bool, len(fs.dirs))
	for p := range fs.dirs {
		if np, ok := move(p); ok {
			p = np
		}
		dirs[p] = true
	}
	fs.files, fs.dirs = files, dirs
	return nil
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	for p := path; !fs.dirs[p]; p = filepath.Dir(p) {
		fs.dirs[p] = true
	}
	return nil
}

func (fs *testFS) ReadDir(path string) ([]os.DirEntry, error) {
	if !fs.dirs[path] {
		return nil, os.ErrNotExist
	}
	var entries []os.DirEntry
	for _, name := range fs.children(path) {
		child := filepath.Join(path, name)
		entries = append(entries, iofs.FileInfoToDirEntry(&mockFileInfo{name: name, isDir: fs.dirs[child]}))
	}
	return entries, nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, os.ErrNotExist
}

// mockFileInfo implements os.FileInfo
type mockFileInfo struct {
	name  string
	isDir bool
}

func (m *mockFileInfo) Name() string { return m.name }
func (m *mockFileInfo) Size() int64  { return 0 }
func (m *mockFileInfo) Mode() os.FileMode {
	if m.isDir {
		return os.ModeDir | 0755
	}
	return 0644
}
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// setupTestEngine creates an engine over an empty in-memory tree.
func setupTestEngine(t *testing.T) (*engine.Engine, *testFS) {
	t.Helper()
	tfs := newTestFS()
	store := journal.NewFileStore(tfs, "/state/journal")
	clk := clock.NewStepped(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), time.Second)
	return engine.New(tfs, store, clk), tfs
}

func runOptions(maxLen int, roots ...string) *config.Options {
	opts := config.DefaultOptions()
	opts.Roots = roots
	opts.MaxLen = maxLen
	return &opts
}
