package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/namefit/internal/clock"
	"github.com/danieljhkim/namefit/internal/config"
	"github.com/danieljhkim/namefit/internal/engine"
	"github.com/danieljhkim/namefit/internal/fsops"
	"github.com/danieljhkim/namefit/internal/journal"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(paths *config.Paths) *engine.Engine {
	fs := fsops.NewRealFS()
	store := journal.NewFileStore(fs, paths.Journals)
	return engine.New(fs, store, clock.System{})
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// loadOptions layers defaults, the config file and explicitly set flags,
// in that order, and validates the result.
func loadOptions(cmd *cobra.Command, flags *runFlags, paths *config.Paths, roots []string) (*config.Options, error) {
	opts := config.DefaultOptions()

	var (
		fileCfg *config.FileConfig
		err     error
	)
	if flags.configPath != "" {
		fileCfg, err = config.LoadFile(flags.configPath)
	} else {
		fileCfg, err = config.LoadOptionalFile(paths.Config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := fileCfg.Apply(&opts); err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("max-len") {
		opts.MaxLen = flags.maxLen
	}
	if f.Changed("secondary-ext-len") {
		opts.SecondaryExtLen = flags.secondaryExtLen
	}
	if f.Changed("word-boundaries") {
		opts.WordBoundaries = flags.wordBoundaries
	}
	if f.Changed("dry-run") {
		opts.DryRun = flags.dryRun
	}
	if f.Changed("journal") {
		opts.Journal = flags.journal
	}
	if f.Changed("color") {
		mode, err := config.ParseColorMode(flags.color)
		if err != nil {
			return nil, err
		}
		opts.Color = mode
	}
	opts.Roots = roots

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// failureError turns a failure count into the command's error.
func failureError(n int) error {
	if n == 0 {
		return nil
	}
	return fmt.Errorf("%s failed", PrintCount(n, "entry", "entries"))
}
