package integration

import (
	"context"
	"errors"
	"os"
	"slices"
	"testing"

	"github.com/danieljhkim/namefit/internal/engine"
)

func assertTree(t *testing.T, fs *testFS, root string, want ...string) {
	t.Helper()
	slices.Sort(want)
	if got := fs.tree(root); !slices.Equal(got, want) {
		t.Errorf("tree under %s:\n got  %q\n want %q", root, got, want)
	}
}

func TestRunUndo_FullCycle(t *testing.T) {
	eng, fs := setupTestEngine(t)
	ctx := context.Background()

	fs.addFile("/music/The Very Long Artist Name/Greatest Hits Collection/01 Opening Theme.flac")
	fs.addFile("/music/The Very Long Artist Name/Greatest Hits Collection/01 Opening Theme.en.lrc")
	fs.addFile("/music/The Very Long Artist Name/Greatest Hits Collection/cover.jpg")
	fs.addFile("/music/日本のアーティスト/夜明けのメロディー.mp3")

	opts := runOptions(20, "/music")
	opts.WordBoundaries = true
	opts.Journal = true

	result, err := eng.Run(ctx, &engine.RunRequest{Options: opts})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	assertTree(t, fs, "/music",
		"The Very Long",
		"The Very Long/Greatest Hits",
		"The Very Long/Greatest Hits/01 Opening.en.lrc",
		"The Very Long/Greatest Hits/01 Opening.flac",
		"The Very Long/Greatest Hits/cover.jpg",
		"日本のアーテ",
		"日本のアーテ/夜明けのメ.mp3",
	)

	summary := result.Summary()
	if summary.Renamed != 6 || summary.Unchanged != 2 || summary.Failed != 0 {
		t.Errorf("Summary() = %+v", summary)
	}
	if result.JournalID == "" {
		t.Fatal("expected a journal")
	}

	undo, err := eng.Undo(ctx, &engine.UndoRequest{})
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if undo.Summary().Failed != 0 {
		t.Fatalf("Undo failures: %+v", undo.Outcomes)
	}

	assertTree(t, fs, "/music",
		"The Very Long Artist Name",
		"The Very Long Artist Name/Greatest Hits Collection",
		"The Very Long Artist Name/Greatest Hits Collection/01 Opening Theme.en.lrc",
		"The Very Long Artist Name/Greatest Hits Collection/01 Opening Theme.flac",
		"The Very Long Artist Name/Greatest Hits Collection/cover.jpg",
		"日本のアーティスト",
		"日本のアーティスト/夜明けのメロディー.mp3",
	)
}

func TestRun_UnreadableDirectory(t *testing.T) {
	eng, fs := setupTestEngine(t)

	fs.addFile("/data/locked/inside_a_long_name.txt")
	fs.addFile("/data/open/another_long_name.txt")
	fs.unreadable["/data/locked"] = os.ErrPermission

	result, err := eng.Run(context.Background(), &engine.RunRequest{Options: runOptions(10, "/data")})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	assertTree(t, fs, "/data",
		"locked",
		"locked/inside_a_long_name.txt",
		"open",
		"open/anothe.txt",
	)

	failures := result.Failures()
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %v", failures)
	}
	if !errors.Is(failures[0], engine.ErrTraversalEntry) || !errors.Is(failures[0], os.ErrPermission) {
		t.Errorf("unexpected failure: %v", failures[0])
	}
	if got := result.Summary().Failed; got != 1 {
		t.Errorf("Failed = %d, want 1", got)
	}
}

func TestRun_MultipleRoots(t *testing.T) {
	eng, fs := setupTestEngine(t)

	fs.addFile("/a/first_long_file.txt")
	fs.addFile("/b/second_long_file.txt")

	result, err := eng.Run(context.Background(), &engine.RunRequest{
		Options: runOptions(10, "/a", "/missing", "/b"),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	assertTree(t, fs, "/a", "first_.txt")
	assertTree(t, fs, "/b", "second.txt")

	if !errors.Is(result.Roots[1].Err, engine.ErrRootUnreadable) {
		t.Errorf("expected ErrRootUnreadable for /missing, got %v", result.Roots[1].Err)
	}
}

func TestRun_CollidingSiblings(t *testing.T) {
	eng, fs := setupTestEngine(t)

	fs.addFile("/x/report_2023_final.pdf")
	fs.addFile("/x/report_2023_draft.pdf")

	result, err := eng.Run(context.Background(), &engine.RunRequest{Options: runOptions(15, "/x")})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// both truncate to "report_2023.pdf"; the second rename must not clobber the first
	assertTree(t, fs, "/x", "report_2023.pdf", "report_2023_final.pdf")

	data, _ := fs.ReadFile("/x/report_2023.pdf")
	if string(data) != "/x/report_2023_draft.pdf" {
		t.Errorf("unexpected content %q", data)
	}

	failures := result.Failures()
	if len(failures) != 1 || !errors.Is(failures[0], engine.ErrRenameFailed) || !errors.Is(failures[0], os.ErrExist) {
		t.Errorf("expected one exclusive-rename failure, got %v", failures)
	}
}
