package engine

import "github.com/danieljhkim/namefit/internal/config"

// RunRequest represents a request to truncate names.
type RunRequest struct {
	// Options is the validated configuration for the run
	Options *config.Options
}

// UndoRequest represents a request to roll back a journaled run.
type UndoRequest struct {
	// ID is the journal to roll back; empty selects the newest
	ID string

	// DryRun reports the reverse renames without performing them
	DryRun bool
}

// HistoryRequest represents a request to list journaled runs.
type HistoryRequest struct {
	// Limit caps the number of runs returned; 0 means all
	Limit int
}
