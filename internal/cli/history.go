package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/namefit/internal/config"
	"github.com/danieljhkim/namefit/internal/engine"
)

func newHistoryCmd(flags *runFlags) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled runs, newest first",
		Args:  cobra.NoArgs,
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

			result, err := newEngine(paths).History(cmd.Context(), &engine.HistoryRequest{Limit: limit})
			if err != nil {
				return err
			}

			if flags.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), result)
			}

			p := newPrinter(cmd)
			if len(result.Runs) == 0 {
				p.PrintEmptyState("No journaled runs. Use --journal to record one.")
				return nil
			}

			p.PrintSection("Journaled Runs")
			rows := make([][]string, 0, len(result.Runs))
			for _, run := range result.Runs {
				status := "applied"
				if run.UndoneAt != nil {
					status = "undone"
				}
				rows = append(rows, []string{
					run.ID,
					run.StartedAt.Local().Format(time.DateTime),
					fmt.Sprint(run.Renames),
					status,
					strings.Join(run.Roots, ", "),
				})
			}
			p.PrintTable([]string{"ID", "STARTED", "RENAMES", "STATUS", "ROOTS"}, rows)
			return nil
		},
	}

	historyCmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many runs (0 for all)")
	return historyCmd
}
