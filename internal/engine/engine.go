// Package engine runs namefit operations.
//
// The engine is the orchestration layer between the CLI and the lower
// level packages. It walks each root, feeds the entries to the planner,
// executes the resulting plans through the exclusive rename primitive and
// journals what it applied.
//
// Key components:
//   - Engine: main orchestrator called by the CLI
//   - Run: truncate names under every root
//   - Undo/History: roll back and list journaled runs
package engine

import (
	"path/filepath"

	"github.com/danieljhkim/namefit/internal/clock"
	"github.com/danieljhkim/namefit/internal/fsops"
	"github.com/danieljhkim/namefit/internal/journal"
	"github.com/danieljhkim/namefit/internal/planner"
)

// Engine orchestrates all namefit operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs       fsops.FS
	journals journal.Store
	clock    clock.Clock
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, journals journal.Store, clk clock.Clock) *Engine {
	return &Engine{
		fs:       fs,
		journals: journals,
		clock:    clk,
	}
}

// execute applies items in order. Every rename is attempted on its own; a
// failure is recorded on its outcome and the remaining items still run.
// Applied renames are added to jrnl when it is not nil.
func (e *Engine) execute(items []planner.Item, dryRun bool, jrnl *journal.Journal) []Outcome {
	outcomes := make([]Outcome, 0, len(items))
	for _, item := range items {
		out := Outcome{Item: item}

		switch item.Action {
		case planner.ActionSkippedOversized:
			out.Err = wrapf(ErrOversized, "%s: %s", item.OldPath, item.Reason)
		case planner.ActionRenamed:
			if dryRun {
				break
			}
			if err := e.fs.Rename(item.OldPath, item.NewPath); err != nil {
				out.Err = wrapErr(ErrRenameFailed, err)
				break
			}
			out.Applied = true
			if jrnl != nil {
				jrnl.Add(absPath(item.OldPath), absPath(item.NewPath), item.IsDir, e.clock.Now())
			}
		}

		outcomes = append(outcomes, out)
	}
	return outcomes
}

// absPath makes journal records independent of the working directory.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
