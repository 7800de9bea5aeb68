package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/namefit/internal/config"
	"github.com/danieljhkim/namefit/internal/engine"
)

func newUndoCmd(flags *runFlags) *cobra.Command {
	var dryRun bool

	undoCmd := &cobra.Command{
		Use:   "undo [run-id]",
		Short: "Revert the renames of a journaled run",
		Long: `Revert the renames recorded by a run made with --journal.

Without [run-id] the newest run is reverted. Renames are replayed in reverse
order and never overwrite a path that has been taken since; such entries are
reported and the remaining renames still run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := config.ParseColorMode(flags.color)
			if err != nil {
				return err
			}
			setupColor(mode)

			paths, err := config.DefaultPaths()
			if err != nil {
				return fmt.Errorf("failed to get config paths: %w", err)
			}

			req := &engine.UndoRequest{DryRun: dryRun}
			if len(args) > 0 {
				req.ID = args[0]
			}

			result, undoErr := newEngine(paths).Undo(cmd.Context(), req)
			if result == nil {
				return undoErr
			}

			if flags.jsonOutput {
				if err := outputJSON(cmd.OutOrStdout(), newUndoView(result)); err != nil {
					return err
				}
			} else {
				printUndoResult(newPrinter(cmd), result)
			}

			if undoErr != nil {
				return undoErr
			}
			return failureError(result.Summary().Failed)
		},
	}

	undoCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be reverted without renaming")
	return undoCmd
}

func printUndoResult(p *printer, result *engine.UndoResult) {
	verb := "Restoring name"
	if result.DryRun {
		verb = "Would restore"
	}

	for _, out := range result.Outcomes {
		if out.Failed() {
			p.PrintError(fmt.Sprintf("Error restoring %s: %v", out.Item.NewPath, out.Err))
			continue
		}
		p.PrintRename(verb, out.Item.OldName(), out.Item.NewName())
	}

	s := result.Summary()
	msg := fmt.Sprintf("Run %s: %s, %d failed", result.JournalID, PrintCount(s.Renamed, "restore", "restores"), s.Failed)
	switch {
	case s.Failed > 0:
		p.PrintWarning(msg)
	case result.DryRun:
		p.PrintInfo("Dry run: " + msg)
	default:
		p.PrintSuccess(msg)
	}
}

type undoView struct {
	JournalID string         `json:"journal_id"`
	DryRun    bool           `json:"dry_run"`
	Summary   engine.Summary `json:"summary"`
	Items     []itemView     `json:"items"`
}

func newUndoView(result *engine.UndoResult) undoView {
	return undoView{
		JournalID: result.JournalID,
		DryRun:    result.DryRun,
		Summary:   result.Summary(),
		Items:     outcomeViews(result.Outcomes),
	}
}
