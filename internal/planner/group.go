package planner

import (
	"iter"

	"github.com/danieljhkim/namefit/internal/fsops"
	"github.com/danieljhkim/namefit/internal/naming"
)

// Member is one file of a sibling group.
type Member struct {
	Entry fsops.Entry
	Parts naming.NameParts
}

// SiblingGroup holds the files of one directory that share a raw stem.
// Membership depends on Dir and Stem only, never on extensions.
type SiblingGroup struct {
	Dir     string
	Stem    string
	Members []Member
}

type groupKey struct {
	dir  string
	stem string
}

// Groups is the result of the grouping pass over one traversal.
type Groups struct {
	// Groups in order of first appearance
	Groups []*SiblingGroup

	// Dirs are the directory entries, set aside for PlanDirectories
	Dirs []fsops.Entry

	// EntryErrors are entries the traversal failed to read
	EntryErrors []EntryError

	index map[groupKey]*SiblingGroup
}

// GroupFiles consumes entries and buckets every file by parent directory and
// raw stem. Unreadable entries are collected, not fatal.
func GroupFiles(entries iter.Seq[fsops.Entry], secondaryLen int) *Groups {
	g := &Groups{index: make(map[groupKey]*SiblingGroup)}
	for entry := range entries {
		switch {
		case entry.Err != nil:
			g.EntryErrors = append(g.EntryErrors, EntryError{Path: entry.Path, Err: entry.Err})
		case entry.IsDir:
			g.Dirs = append(g.Dirs, entry)
		default:
			g.add(entry, naming.Split(entry.Name, secondaryLen))
		}
	}
	return g
}

func (g *Groups) add(entry fsops.Entry, parts naming.NameParts) {
	key := groupKey{dir: entry.Dir, stem: parts.Stem}
	group, ok := g.index[key]
	if !ok {
		group = &SiblingGroup{Dir: entry.Dir, Stem: parts.Stem}
		g.index[key] = group
		g.Groups = append(g.Groups, group)
	}
	group.Members = append(group.Members, Member{Entry: entry, Parts: parts})
}
