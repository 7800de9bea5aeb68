package planner

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	"github.com/danieljhkim/namefit/internal/config"
	"github.com/danieljhkim/namefit/internal/fsops"
	"github.com/danieljhkim/namefit/internal/naming"
)

// PlanDirectories plans each directory independently, deepest first.
// Directories sharing a depth keep their traversal order.
func PlanDirectories(dirs []fsops.Entry, opts *config.Options) []Item {
	ordered := slices.Clone(dirs)
	slices.SortStableFunc(ordered, func(a, b fsops.Entry) int {
		return cmp.Compare(depth(b.Path), depth(a.Path))
	})

	items := make([]Item, 0, len(ordered))
	for _, dir := range ordered {
		newName := naming.TruncateDirName(dir.Name, opts.MaxLen, opts.WordBoundaries)
		items = append(items, planName(dir, newName, opts.MaxLen))
	}
	return items
}

func depth(path string) int {
	return strings.Count(filepath.Clean(path), string(filepath.Separator))
}
