package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func journaledRun(t *testing.T, eng *Engine, root string) *RunResult {
	t.Helper()
	opts := testOptions(12, root)
	opts.Journal = true

	result, err := eng.Run(context.Background(), &RunRequest{Options: opts})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.JournalID == "" {
		t.Fatal("expected a journal to be written")
	}
	return result
}

func TestUndo_RestoresTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "r")
	writeTree(t, root, sampleTree...)
	eng := newTestEngine(t, nil)

	run := journaledRun(t, eng, root)
	assertTree(t, root, sampleTruncated...)

	result, err := eng.Undo(context.Background(), &UndoRequest{})
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if result.JournalID != run.JournalID {
		t.Errorf("undid %s, want latest run %s", result.JournalID, run.JournalID)
	}
	if got := result.Summary(); got.Renamed != 4 || got.Failed != 0 {
		t.Errorf("Summary() = %+v", got)
	}

	assertTree(t, root, "abcdefghijklmnop.txt", "abcdefghijklmnop.json",
		"a_very_long_directory_name", "a_very_long_directory_name/inner_long_file_name.md")

	_, err = eng.Undo(context.Background(), &UndoRequest{ID: run.JournalID})
	if !errors.Is(err, ErrAlreadyUndone) {
		t.Errorf("expected ErrAlreadyUndone, got %v", err)
	}
}

func TestUndo_DryRun(t *testing.T) {
	root := filepath.Join(t.TempDir(), "r")
	writeTree(t, root, sampleTree...)
	eng := newTestEngine(t, nil)
	run := journaledRun(t, eng, root)

	result, err := eng.Undo(context.Background(), &UndoRequest{ID: run.JournalID, DryRun: true})
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got := result.Summary().Renamed; got != 4 {
		t.Errorf("planned reverse renames = %d, want 4", got)
	}
	assertTree(t, root, sampleTruncated...)

	// a dry run leaves the journal usable
	if _, err := eng.Undo(context.Background(), &UndoRequest{ID: run.JournalID}); err != nil {
		t.Fatalf("Undo after dry run failed: %v", err)
	}
}

func TestUndo_TargetReused(t *testing.T) {
	root := filepath.Join(t.TempDir(), "r")
	writeTree(t, root, "abcdefghijklmnop.txt")
	eng := newTestEngine(t, nil)
	journaledRun(t, eng, root)

	// the original name is taken again before the undo
	writeTree(t, root, "abcdefghijklmnop.txt")

	result, err := eng.Undo(context.Background(), &UndoRequest{})
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got := result.Summary().Failed; got != 1 {
		t.Fatalf("Failed = %d, want 1", got)
	}
	if !errors.Is(result.Outcomes[0].Err, os.ErrExist) {
		t.Errorf("expected ErrExist, got %v", result.Outcomes[0].Err)
	}

	// the journal stays open for another attempt
	history, err := eng.History(context.Background(), &HistoryRequest{})
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if history.Runs[0].UndoneAt != nil {
		t.Error("journal must not be marked undone after a failure")
	}
}

func TestUndo_NoJournal(t *testing.T) {
	eng := newTestEngine(t, nil)

	_, err := eng.Undo(context.Background(), &UndoRequest{})
	if !errors.Is(err, ErrNoJournal) {
		t.Errorf("expected ErrNoJournal, got %v", err)
	}

	_, err = eng.Undo(context.Background(), &UndoRequest{ID: "not-an-id"})
	if !errors.Is(err, ErrNoJournal) {
		t.Errorf("expected ErrNoJournal for a bad id, got %v", err)
	}
}

func TestRun_NoJournalWithoutRenames(t *testing.T) {
	root := filepath.Join(t.TempDir(), "r")
	writeTree(t, root, "short.txt")
	eng := newTestEngine(t, nil)

	opts := testOptions(12, root)
	opts.Journal = true
	result, err := eng.Run(context.Background(), &RunRequest{Options: opts})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.JournalID != "" {
		t.Errorf("expected no journal, got %s", result.JournalID)
	}
}

func TestHistory(t *testing.T) {
	eng := newTestEngine(t, nil)

	history, err := eng.History(context.Background(), &HistoryRequest{})
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history.Runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(history.Runs))
	}

	tmp := t.TempDir()
	var ids []string
	for _, name := range []string{"one", "two"} {
		root := filepath.Join(tmp, name)
		writeTree(t, root, "abcdefghijklmnop.txt")
		ids = append(ids, journaledRun(t, eng, root).JournalID)
	}

	history, err = eng.History(context.Background(), &HistoryRequest{})
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(history.Runs))
	}
	if history.Runs[0].ID != ids[1] {
		t.Errorf("expected newest run first, got %s", history.Runs[0].ID)
	}
	if history.Runs[0].Renames != 1 {
		t.Errorf("Renames = %d, want 1", history.Runs[0].Renames)
	}

	limited, err := eng.History(context.Background(), &HistoryRequest{Limit: 1})
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(limited.Runs) != 1 {
		t.Errorf("expected 1 run with limit, got %d", len(limited.Runs))
	}
}
