package planner

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/namefit/internal/config"
	"github.com/danieljhkim/namefit/internal/fsops"
	"github.com/danieljhkim/namefit/internal/naming"
)

// PlanFiles plans every member of every group. The stem of a group is
// truncated once, against the budget of its widest extensions, and shared
// by all members.
func PlanFiles(groups []*SiblingGroup, opts *config.Options) []Item {
	items := []Item{}
	for _, group := range groups {
		items = append(items, planGroup(group, opts)...)
	}
	return items
}

func planGroup(group *SiblingGroup, opts *config.Options) []Item {
	parts := make([]naming.NameParts, 0, len(group.Members))
	for _, m := range group.Members {
		parts = append(parts, m.Parts)
	}

	budget := naming.StemBudget(parts, opts.MaxLen)
	stem := naming.TruncateStem(group.Stem, budget, opts.WordBoundaries)

	items := make([]Item, 0, len(group.Members))
	for _, m := range group.Members {
		items = append(items, planName(m.Entry, m.Parts.WithStem(stem), opts.MaxLen))
	}
	return items
}

// planName decides between skip, no-op and rename for one entry.
func planName(entry fsops.Entry, newName string, maxLen int) Item {
	item := Item{
		Action:  ActionUnchanged,
		OldPath: entry.Path,
		NewPath: entry.Path,
		IsDir:   entry.IsDir,
	}

	switch {
	case len(newName) > maxLen:
		item.Action = ActionSkippedOversized
		item.Reason = fmt.Sprintf("%q is still %d bytes after truncation (limit %d)", newName, len(newName), maxLen)
	case !usableName(newName):
		item.Action = ActionSkippedOversized
		item.Reason = fmt.Sprintf("no valid name of at most %d bytes remains", maxLen)
	case newName != entry.Name:
		item.Action = ActionRenamed
		item.NewPath = filepath.Join(entry.Dir, newName)
	}
	return item
}

// usableName rejects names that cannot stand for an entry of their own.
func usableName(name string) bool {
	return name != "" && name != "." && name != ".."
}
