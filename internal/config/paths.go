// Package config manages namefit options and filesystem paths.
//
// Options come from three layers: built-in defaults, an optional TOML file,
// and command-line flags, in increasing priority. The data directory
// (default ~/.namefit/) holds the config file and the rename journals, and
// can be moved with the NAMEFIT_ROOT environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// RootEnv overrides the data directory.
const RootEnv = "NAMEFIT_ROOT"

// Paths contains all the filesystem paths used by namefit.
type Paths struct {
	// Root is the base directory for all namefit data (default: ~/.namefit)
	Root string

	// Config is the path to the default config file
	Config string

	// Journals is the directory holding one journal file per recorded run
	Journals string
}

// DefaultPaths returns the default paths for namefit.
// The root can be overridden with NAMEFIT_ROOT.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv(RootEnv)
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".namefit")
	}
	return PathsAt(root), nil
}

// PathsAt lays out the namefit paths under root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:     root,
		Config:   filepath.Join(root, "config.toml"),
		Journals: filepath.Join(root, "journal"),
	}
}

// EnsureDirectories creates the data directories if they don't exist.
// Only runs that record a journal need them.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Root, p.Journals} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
