package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/danieljhkim/namefit/internal/fsops"
)

const fileExt = ".json"

// Store persists journals.
type Store interface {
	// Save writes the journal atomically, replacing an earlier version.
	Save(j *Journal) error

	// Load reads the journal with the given id.
	// Returns ErrNotFound if there is none.
	Load(id string) (*Journal, error)

	// List returns every journal, newest first.
	List() ([]*Journal, error)

	// Latest returns the newest journal.
	// Returns ErrNotFound if there are none.
	Latest() (*Journal, error)
}

// FileStore implements Store using one JSON file per journal.
type FileStore struct {
	fs  fsops.FS
	dir string
}

// NewFileStore creates a new FileStore rooted at dir.
func NewFileStore(fs fsops.FS, dir string) *FileStore {
	return &FileStore{fs: fs, dir: dir}
}

// Save writes the journal atomically.
func (s *FileStore) Save(j *Journal) error {
	if err := ValidateID(j.ID); err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}

	if err := s.fs.AtomicWrite(s.path(j.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}

	return nil
}

// Load reads the journal with the given id.
func (s *FileStore) Load(id string) (*Journal, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	data, err := s.fs.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	var j Journal
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("failed to unmarshal journal %s: %w", id, err)
	}
	if j.Schema > SchemaVersion {
		return nil, fmt.Errorf("journal %s has unsupported schema %d", id, j.Schema)
	}

	return &j, nil
}

// List returns every journal, newest first. Files that are not journals are ignored.
func (s *FileStore) List() ([]*Journal, error) {
	ids, err := s.ids()
	if err != nil {
		return nil, err
	}

	journals := make([]*Journal, 0, len(ids))
	for _, id := range ids {
		j, err := s.Load(id)
		if err != nil {
			return nil, err
		}
		journals = append(journals, j)
	}
	return journals, nil
}

// Latest returns the newest journal.
func (s *FileStore) Latest() (*Journal, error) {
	ids, err := s.ids()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNotFound
	}
	return s.Load(ids[0])
}

// ids lists journal ids, newest first.
func (s *FileStore) ids() ([]string, error) {
	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}

	var ids []string
	for _, e := range entries {
		id, ok := strings.CutSuffix(e.Name(), fileExt)
		if !ok || e.IsDir() || ValidateID(id) != nil {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	slices.Reverse(ids)
	return ids, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+fileExt)
}
