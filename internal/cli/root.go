// Package cli implements the namefit command line.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/namefit/internal/config"
)

// runFlags holds the flags of the root command. Only flags that were set
// explicitly override the config file.
type runFlags struct {
	maxLen          int
	secondaryExtLen int
	wordBoundaries  bool
	dryRun          bool
	journal         bool
	configPath      string
	color           string
	jsonOutput      bool
}

// NewRootCmd builds the namefit command tree.
func NewRootCmd() *cobra.Command {
	flags := &runFlags{}

	rootCmd := &cobra.Command{
		Use:     "namefit [flags] PATH...",
		Version: "dev",
		Short:   "Truncate file and directory names to a byte limit",
		Long: `namefit shortens file and directory names so that none exceeds a byte
limit, for filesystems and sync tools with tight name limits.

Extensions are preserved, including short secondary ones such as "tar" in
"archive.tar.gz". Files that share a stem in the same directory keep sharing
it after truncation, so "movie.mkv" and "movie.en.srt" stay paired. Names are
never cut inside a UTF-8 character, and existing paths are never overwritten.`,
		Example: `  namefit --max-len 100 ~/Music
  namefit -n -w --max-len 64 ./downloads
  namefit --journal ./photos && namefit undo`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTruncate(cmd, flags, args)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flags.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", string(config.ColorAuto), "Colored output: auto, always or never")

	f := rootCmd.Flags()
	f.IntVar(&flags.maxLen, "max-len", config.DefaultMaxLen, "Maximum name length in bytes")
	f.IntVarP(&flags.secondaryExtLen, "secondary-ext-len", "s", config.DefaultSecondaryExtLen, "Longest secondary extension to keep, in bytes (0 disables)")
	f.BoolVarP(&flags.wordBoundaries, "word-boundaries", "w", false, "Cut at the last space when it costs few bytes")
	f.BoolVarP(&flags.dryRun, "dry-run", "n", false, "Show what would be renamed without renaming")
	f.BoolVar(&flags.journal, "journal", false, "Record applied renames so they can be undone")
	f.StringVar(&flags.configPath, "config", "", "Config file (default $NAMEFIT_ROOT/config.toml)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "journal",
		Title: "Journal:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	undoCmd := newUndoCmd(flags)
	undoCmd.GroupID = "journal"
	historyCmd := newHistoryCmd(flags)
	historyCmd.GroupID = "journal"
	rootCmd.AddCommand(undoCmd, historyCmd)

	rootCmd.AddCommand(newVersionCmd(), newCompletionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print the namefit version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cmd.Root().Version)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for namefit for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}

	shells := []struct {
		name string
		gen  func(cmd *cobra.Command) error
	}{
		{"bash", func(cmd *cobra.Command) error { return cmd.Root().GenBashCompletion(cmd.OutOrStdout()) }},
		{"zsh", func(cmd *cobra.Command) error { return cmd.Root().GenZshCompletion(cmd.OutOrStdout()) }},
		{"fish", func(cmd *cobra.Command) error { return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true) }},
		{"powershell", func(cmd *cobra.Command) error {
			return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		}},
	}
	for _, shell := range shells {
		completionCmd.AddCommand(&cobra.Command{
			Use:                   shell.name,
			Short:                 "Generate the autocompletion script for " + shell.name,
			Args:                  cobra.NoArgs,
			DisableFlagsInUseLine: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return shell.gen(cmd)
			},
		})
	}
	return completionCmd
}

// Execute runs the namefit command line.
func Execute(ctx context.Context, version string) error {
	return fang.Execute(ctx, NewRootCmd(), fang.WithVersion(version))
}
