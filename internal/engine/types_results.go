package engine

import (
	"errors"
	"time"

	"github.com/danieljhkim/namefit/internal/planner"
)

// Outcome is what happened to one planned item.
type Outcome struct {
	// Item is the plan entry
	Item planner.Item

	// Applied is true once the rename has been performed
	Applied bool

	// Err is set for skips (ErrOversized) and failed renames (ErrRenameFailed)
	Err error
}

// Failed reports whether the outcome counts as a failure. Skips do not.
func (o Outcome) Failed() bool {
	return o.Err != nil && !errors.Is(o.Err, ErrOversized)
}

// Summary counts outcomes by kind. In a dry run Renamed counts planned renames.
type Summary struct {
	Renamed   int `json:"renamed"`
	Unchanged int `json:"unchanged"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

func (s *Summary) add(out Outcome) {
	switch {
	case out.Failed():
		s.Failed++
	case out.Item.Action == planner.ActionSkippedOversized:
		s.Skipped++
	case out.Item.Action == planner.ActionRenamed:
		s.Renamed++
	default:
		s.Unchanged++
	}
}

// RootResult represents the outcome of processing one root.
type RootResult struct {
	// Root is the path as given
	Root string

	// Err is set when the root could not be read; nothing else is set then
	Err error

	// Plan is the plan built for the root
	Plan *planner.Plan

	// Outcomes are in execution order: files first, then directories deepest first
	Outcomes []Outcome
}

// Failures returns every failure under the root.
func (r *RootResult) Failures() []error {
	var errs []error
	if r.Err != nil {
		errs = append(errs, r.Err)
	}
	if r.Plan != nil {
		for _, ee := range r.Plan.EntryErrors {
			errs = append(errs, wrapErr(ErrTraversalEntry, ee))
		}
	}
	for _, out := range r.Outcomes {
		if out.Failed() {
			errs = append(errs, out.Err)
		}
	}
	return errs
}

// RunResult represents the result of a run.
type RunResult struct {
	// StartedAt is when the run began
	StartedAt time.Time

	// DryRun is true if nothing was renamed
	DryRun bool

	// Roots holds one result per root, in the order given
	Roots []*RootResult

	// JournalID is the journal written for the run, empty if none was
	JournalID string
}

// Summary totals outcomes across roots. Unreadable roots and entries count as failures.
func (r *RunResult) Summary() Summary {
	var s Summary
	for _, root := range r.Roots {
		if root.Err != nil {
			s.Failed++
		}
		if root.Plan != nil {
			s.Failed += len(root.Plan.EntryErrors)
		}
		for _, out := range root.Outcomes {
			s.add(out)
		}
	}
	return s
}

// Failures returns every failure of the run, root by root.
func (r *RunResult) Failures() []error {
	var errs []error
	for _, root := range r.Roots {
		errs = append(errs, root.Failures()...)
	}
	return errs
}

// UndoResult represents the result of rolling back a run.
type UndoResult struct {
	// JournalID is the run that was rolled back
	JournalID string

	// DryRun is true if nothing was renamed
	DryRun bool

	// Outcomes are the reverse renames, newest first
	Outcomes []Outcome
}

// Summary counts the reverse renames.
func (r *UndoResult) Summary() Summary {
	var s Summary
	for _, out := range r.Outcomes {
		s.add(out)
	}
	return s
}

// RunInfo describes one journaled run.
type RunInfo struct {
	ID        string     `json:"id"`
	StartedAt time.Time  `json:"started_at"`
	Roots     []string   `json:"roots"`
	Renames   int        `json:"renames"`
	UndoneAt  *time.Time `json:"undone_at,omitempty"`
}

// HistoryResult lists journaled runs, newest first.
type HistoryResult struct {
	Runs []RunInfo `json:"runs"`
}
