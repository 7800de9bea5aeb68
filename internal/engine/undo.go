package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danieljhkim/namefit/internal/journal"
	"github.com/danieljhkim/namefit/internal/planner"
)

// Undo rolls back a journaled run by replaying its renames in reverse.
//
// The reverse renames use the same exclusive primitive as a run, so a path
// that has been reused since is left alone and reported. The journal is
// marked undone only when every reverse rename succeeded.
func (e *Engine) Undo(ctx context.Context, req *UndoRequest) (*UndoResult, error) {
	j, err := e.loadJournal(req.ID)
	if err != nil {
		return nil, err
	}
	if j.Undone() {
		return nil, fmt.Errorf("%w: %s at %s", ErrAlreadyUndone, j.ID, j.UndoneAt.Format(time.RFC3339))
	}

	items := make([]planner.Item, 0, len(j.Records))
	for i := len(j.Records) - 1; i >= 0; i-- {
		r := j.Records[i]
		items = append(items, planner.Item{
			Action:  planner.ActionRenamed,
			OldPath: r.NewPath,
			NewPath: r.OldPath,
			IsDir:   r.IsDir,
		})
	}

	result := &UndoResult{
		JournalID: j.ID,
		DryRun:    req.DryRun,
		Outcomes:  e.execute(items, req.DryRun, nil),
	}

	if req.DryRun || result.Summary().Failed > 0 {
		return result, nil
	}

	j.MarkUndone(e.clock.Now())
	if err := e.journals.Save(j); err != nil {
		return result, fmt.Errorf("failed to save journal: %w", err)
	}

	return result, nil
}

// History lists journaled runs, newest first.
func (e *Engine) History(ctx context.Context, req *HistoryRequest) (*HistoryResult, error) {
	journals, err := e.journals.List()
	if err != nil {
		return nil, err
	}
	if req.Limit > 0 && len(journals) > req.Limit {
		journals = journals[:req.Limit]
	}

	result := &HistoryResult{Runs: make([]RunInfo, 0, len(journals))}
	for _, j := range journals {
		result.Runs = append(result.Runs, RunInfo{
			ID:        j.ID,
			StartedAt: j.StartedAt,
			Roots:     j.Roots,
			Renames:   len(j.Records),
			UndoneAt:  j.UndoneAt,
		})
	}
	return result, nil
}

// loadJournal loads the journal with the given id, or the newest one.
func (e *Engine) loadJournal(id string) (*journal.Journal, error) {
	var (
		j   *journal.Journal
		err error
	)
	if id == "" {
		j, err = e.journals.Latest()
	} else {
		j, err = e.journals.Load(id)
	}

	switch {
	case errors.Is(err, journal.ErrNotFound), errors.Is(err, journal.ErrInvalidID):
		return nil, wrapErr(ErrNoJournal, err)
	case err != nil:
		return nil, err
	}
	return j, nil
}
