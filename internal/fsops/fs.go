// Package fsops provides the filesystem primitives namefit relies on.
//
// All filesystem access in namefit goes through the FS interface: the
// traversal that feeds the planner, the exclusive rename that applies a
// plan, and the small amount of file I/O the journal needs.
//
// Key features:
//   - Walk: lazy traversal yielding one Entry per path, errors included
//   - Rename: never replaces an existing path
//   - Atomic writes using temp file + rename
//   - Testable via the FS interface
package fsops

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
)

// FS provides an abstraction for filesystem operations.
// All filesystem access in namefit must go through this interface.
type FS interface {
	// Walk returns a lazy sequence of the entries under root, root included.
	// An error means root itself could not be read.
	Walk(root string) (iter.Seq[Entry], error)

	// Rename renames oldpath to newpath. It fails if newpath already exists.
	Rename(oldpath, newpath string) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// ReadDir lists a directory sorted by name.
	ReadDir(path string) ([]os.DirEntry, error)

	// AtomicWrite writes data to path atomically using temp file + rename.
	AtomicWrite(path string, data []byte, perm os.FileMode) error

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Rename renames oldpath to newpath without replacing an existing newpath.
func (fs *RealFS) Rename(oldpath, newpath string) error {
	return renameNoReplace(oldpath, newpath)
}

// MkdirAll creates a directory and all parent directories.
func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// ReadDir lists a directory sorted by name.
func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// AtomicWrite writes data to path atomically using temp file + rename.
func (fs *RealFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	// Create temp file in the same directory as target
	tmpFile, err := os.CreateTemp(dir, ".namefit-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	// Journal files are overwritten in place, so this one may replace.
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	tmpFile = nil
	return nil
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
