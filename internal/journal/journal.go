// Package journal records applied renames so that a run can be undone.
//
// A journal is written once per run, after the last rename, and only when
// at least one rename was applied. Journals are JSON files named by a ULID,
// so their lexical order is their chronological order.
package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/danieljhkim/namefit/internal/config"
	"github.com/oklog/ulid/v2"
)

// SchemaVersion is the current journal file format.
const SchemaVersion = 1

// Errors
var (
	ErrNotFound  = errors.New("journal not found")
	ErrInvalidID = errors.New("invalid journal id")
)

// Record is one applied rename.
type Record struct {
	OldPath string    `json:"old_path"`
	NewPath string    `json:"new_path"`
	IsDir   bool      `json:"is_dir"`
	At      time.Time `json:"at"`
}

// Journal is the set of renames applied by one run, in application order.
type Journal struct {
	Schema          int        `json:"schema"`
	ID              string     `json:"id"`
	StartedAt       time.Time  `json:"started_at"`
	Roots           []string   `json:"roots"`
	MaxLen          int        `json:"max_len"`
	SecondaryExtLen int        `json:"secondary_ext_len"`
	WordBoundaries  bool       `json:"word_boundaries"`
	Records         []Record   `json:"records"`
	UndoneAt        *time.Time `json:"undone_at,omitempty"`
}

// New creates an empty journal for a run started at startedAt.
func New(startedAt time.Time, opts *config.Options) *Journal {
	return &Journal{
		Schema:          SchemaVersion,
		ID:              NewID(startedAt),
		StartedAt:       startedAt,
		Roots:           append([]string(nil), opts.Roots...),
		MaxLen:          opts.MaxLen,
		SecondaryExtLen: opts.SecondaryExtLen,
		WordBoundaries:  opts.WordBoundaries,
		Records:         []Record{},
	}
}

// NewID returns a fresh ULID for time t.
func NewID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}

// ValidateID checks that id is a well-formed journal id.
func ValidateID(id string) error {
	if _, err := ulid.ParseStrict(id); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
	}
	return nil
}

// Add appends an applied rename.
func (j *Journal) Add(oldPath, newPath string, isDir bool, at time.Time) {
	j.Records = append(j.Records, Record{
		OldPath: oldPath,
		NewPath: newPath,
		IsDir:   isDir,
		At:      at,
	})
}

// Undone reports whether the journal has been rolled back.
func (j *Journal) Undone() bool {
	return j.UndoneAt != nil
}

// MarkUndone stamps the journal as rolled back at t.
func (j *Journal) MarkUndone(t time.Time) {
	j.UndoneAt = &t
}
