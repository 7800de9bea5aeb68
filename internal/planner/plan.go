package planner

import (
	"path/filepath"
)

// Action is the planned outcome for one entry.
type Action string

// Action constants
const (
	ActionUnchanged        Action = "unchanged"
	ActionRenamed          Action = "renamed"
	ActionSkippedOversized Action = "skipped_oversized"
)

// Item is the plan for a single file or directory.
type Item struct {
	// Action is what should happen to the entry
	Action Action `json:"action"`

	// OldPath is the current path
	OldPath string `json:"old_path"`

	// NewPath is the target path; equal to OldPath unless Action is ActionRenamed
	NewPath string `json:"new_path"`

	// IsDir reports whether the entry is a directory
	IsDir bool `json:"is_dir"`

	// Reason explains a skip
	Reason string `json:"reason,omitempty"`
}

// OldName returns the current base name.
func (i Item) OldName() string {
	return filepath.Base(i.OldPath)
}

// NewName returns the target base name.
func (i Item) NewName() string {
	return filepath.Base(i.NewPath)
}

// EntryError is an entry the traversal could not read.
type EntryError struct {
	Path string
	Err  error
}

func (e EntryError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e EntryError) Unwrap() error {
	return e.Err
}

// Plan represents the renames planned under one root.
type Plan struct {
	// Root is the traversal root the plan was built from
	Root string

	// Files is the file pass, in traversal order of the groups
	Files []Item

	// Dirs is the directory pass, deepest first
	Dirs []Item

	// EntryErrors lists entries that were skipped because they could not be read
	EntryErrors []EntryError
}

// NewPlan creates a new empty Plan.
func NewPlan(root string) *Plan {
	return &Plan{
		Root:        root,
		Files:       []Item{},
		Dirs:        []Item{},
		EntryErrors: []EntryError{},
	}
}

// Items returns file items followed by directory items, in execution order.
func (p *Plan) Items() []Item {
	items := make([]Item, 0, len(p.Files)+len(p.Dirs))
	items = append(items, p.Files...)
	return append(items, p.Dirs...)
}

// Count returns the number of items with the given action.
func (p *Plan) Count(action Action) int {
	n := 0
	for _, item := range p.Items() {
		if item.Action == action {
			n++
		}
	}
	return n
}

// HasRenames returns true if any item would be renamed.
func (p *Plan) HasRenames() bool {
	return p.Renames() > 0
}

// Renames returns the number of planned renames.
func (p *Plan) Renames() int {
	return p.Count(ActionRenamed)
}

// Skipped returns the number of entries that cannot be made to fit.
func (p *Plan) Skipped() int {
	return p.Count(ActionSkippedOversized)
}
