package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/namefit/internal/config"
	"github.com/danieljhkim/namefit/internal/journal"
	"github.com/danieljhkim/namefit/internal/planner"
)

// Run truncates names under every root in req.Options.
//
// Invalid options abort before anything is touched. Beyond that the run
// never stops early: an unreadable root, an unreadable entry or a failed
// rename is recorded in the result and processing moves on. Each root is
// walked once; its files are planned and renamed before its directories,
// which are renamed deepest first.
func (e *Engine) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	if req == nil || req.Options == nil {
		return nil, fmt.Errorf("%w: no options", ErrValidation)
	}
	opts := req.Options
	if err := opts.Validate(); err != nil {
		return nil, wrapErr(ErrValidation, err)
	}

	result := &RunResult{
		StartedAt: e.clock.Now(),
		DryRun:    opts.DryRun,
	}

	var jrnl *journal.Journal
	if opts.Journal && !opts.DryRun {
		jrnl = journal.New(result.StartedAt, opts)
	}

	for _, root := range opts.Roots {
		result.Roots = append(result.Roots, e.runRoot(root, opts, jrnl))
	}

	if jrnl != nil && len(jrnl.Records) > 0 {
		if err := e.journals.Save(jrnl); err != nil {
			return result, fmt.Errorf("failed to save journal: %w", err)
		}
		result.JournalID = jrnl.ID
	}

	return result, nil
}

func (e *Engine) runRoot(root string, opts *config.Options, jrnl *journal.Journal) *RootResult {
	rr := &RootResult{Root: root}

	entries, err := e.fs.Walk(root)
	if err != nil {
		rr.Err = fmt.Errorf("%w %s: %w", ErrRootUnreadable, root, err)
		return rr
	}

	groups := planner.GroupFiles(entries, opts.SecondaryExtLen)
	rr.Plan = planner.NewPlan(root)
	rr.Plan.EntryErrors = append(rr.Plan.EntryErrors, groups.EntryErrors...)

	rr.Plan.Files = planner.PlanFiles(groups.Groups, opts)
	rr.Outcomes = append(rr.Outcomes, e.execute(rr.Plan.Files, opts.DryRun, jrnl)...)

	rr.Plan.Dirs = planner.PlanDirectories(groups.Dirs, opts)
	rr.Outcomes = append(rr.Outcomes, e.execute(rr.Plan.Dirs, opts.DryRun, jrnl)...)

	return rr
}
