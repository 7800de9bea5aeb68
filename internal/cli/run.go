package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/namefit/internal/config"
	"github.com/danieljhkim/namefit/internal/engine"
	"github.com/danieljhkim/namefit/internal/planner"
)

func runTruncate(cmd *cobra.Command, flags *runFlags, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return fmt.Errorf("failed to get config paths: %w", err)
	}

	opts, err := loadOptions(cmd, flags, paths, args)
	if err != nil {
		return err
	}
	setupColor(opts.Color)

	if opts.Journal && !opts.DryRun {
		if err := paths.EnsureDirectories(); err != nil {
			return err
		}
	}

	result, runErr := newEngine(paths).Run(cmd.Context(), &engine.RunRequest{Options: opts})
	if result == nil {
		return runErr
	}

	if flags.jsonOutput {
		if err := outputJSON(cmd.OutOrStdout(), newRunView(result)); err != nil {
			return err
		}
	} else {
		printRunResult(newPrinter(cmd), result)
	}

	if runErr != nil {
		return runErr
	}
	return failureError(len(result.Failures()))
}

func printRunResult(p *printer, result *engine.RunResult) {
	verb := "Truncating name"
	if result.DryRun {
		verb = "Would truncate"
	}

	for _, root := range result.Roots {
		if root.Err != nil {
			p.PrintError(root.Err.Error())
			continue
		}
		for _, ee := range root.Plan.EntryErrors {
			p.PrintError(fmt.Sprintf("%v: %v", engine.ErrTraversalEntry, ee))
		}
		for _, out := range root.Outcomes {
			switch {
			case out.Failed():
				p.PrintError(fmt.Sprintf("Error renaming %s: %v", out.Item.OldPath, out.Err))
			case out.Item.Action == planner.ActionSkippedOversized:
				p.PrintWarning(fmt.Sprintf("Skipping %s: %s", out.Item.OldPath, out.Item.Reason))
			case out.Item.Action == planner.ActionRenamed:
				p.PrintRename(verb, out.Item.OldName(), out.Item.NewName())
			}
		}
	}

	s := result.Summary()
	msg := fmt.Sprintf("%s, %d unchanged, %d skipped, %d failed",
		PrintCount(s.Renamed, "rename", "renames"), s.Unchanged, s.Skipped, s.Failed)
	switch {
	case s.Failed > 0:
		p.PrintWarning(msg)
	case result.DryRun:
		p.PrintInfo("Dry run: " + msg)
	default:
		p.PrintSuccess(msg)
	}
	if result.JournalID != "" {
		p.PrintLabelValue("Journal", result.JournalID)
	}
}

// runView is the JSON form of a run result.
type runView struct {
	DryRun    bool           `json:"dry_run"`
	JournalID string         `json:"journal_id,omitempty"`
	Summary   engine.Summary `json:"summary"`
	Roots     []rootView     `json:"roots"`
}

type rootView struct {
	Root        string     `json:"root"`
	Error       string     `json:"error,omitempty"`
	EntryErrors []string   `json:"entry_errors,omitempty"`
	Items       []itemView `json:"items"`
}

type itemView struct {
	planner.Item
	Applied bool   `json:"applied"`
	Error   string `json:"error,omitempty"`
}

func newRunView(result *engine.RunResult) runView {
	view := runView{
		DryRun:    result.DryRun,
		JournalID: result.JournalID,
		Summary:   result.Summary(),
		Roots:     make([]rootView, 0, len(result.Roots)),
	}
	for _, root := range result.Roots {
		rv := rootView{Root: root.Root, Error: errString(root.Err)}
		if root.Plan != nil {
			for _, ee := range root.Plan.EntryErrors {
				rv.EntryErrors = append(rv.EntryErrors, ee.Error())
			}
		}
		rv.Items = outcomeViews(root.Outcomes)
		view.Roots = append(view.Roots, rv)
	}
	return view
}

func outcomeViews(outcomes []engine.Outcome) []itemView {
	items := make([]itemView, 0, len(outcomes))
	for _, out := range outcomes {
		iv := itemView{Item: out.Item, Applied: out.Applied}
		if out.Failed() {
			iv.Error = out.Err.Error()
		}
		items = append(items, iv)
	}
	return items
}
