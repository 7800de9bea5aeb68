package planner

import (
	"testing"

	"github.com/danieljhkim/namefit/internal/fsops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDirectories_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		dir    string
		maxLen int
		words  bool
		want   string
	}{
		{name: "ascii", dir: "very_long_directory", maxLen: 8, want: "very_lon"},
		{name: "japanese", dir: "日本語ディレクトリ", maxLen: 12, want: "日本語デ"},
		{name: "no boundary snapping without flag", dir: "spaces_in_name", maxLen: 7, want: "spaces_"},
		{name: "dots are not extensions", dir: "release.2024.final", maxLen: 9, want: "release.2"},
		{name: "word boundary", dir: "my photo archive", maxLen: 12, words: true, want: "my photo"},
		{name: "fits", dir: "short", maxLen: 8, want: "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := PlanDirectories([]fsops.Entry{dir("r/" + tt.dir)}, testOptions(tt.maxLen, 6, tt.words))
			require.Len(t, items, 1)

			assert.Equal(t, tt.want, items[0].NewName())
			assert.True(t, items[0].IsDir)
			if tt.want == tt.dir {
				assert.Equal(t, ActionUnchanged, items[0].Action)
			} else {
				assert.Equal(t, ActionRenamed, items[0].Action)
			}
		})
	}
}

func TestPlanDirectories_DeepestFirst(t *testing.T) {
	dirs := []fsops.Entry{
		dir("r"),
		dir("r/aaaaaaaaaa"),
		dir("r/aaaaaaaaaa/bbbbbbbbbb"),
		dir("r/aaaaaaaaaa/bbbbbbbbbb/cccccccccc"),
		dir("r/zzzzzzzzzz"),
	}

	items := PlanDirectories(dirs, testOptions(4, 6, false))

	require.Len(t, items, 5)
	got := make([]string, 0, len(items))
	for _, item := range items {
		got = append(got, item.OldPath)
	}
	assert.Equal(t, []string{
		"r/aaaaaaaaaa/bbbbbbbbbb/cccccccccc",
		"r/aaaaaaaaaa/bbbbbbbbbb",
		"r/aaaaaaaaaa",
		"r/zzzzzzzzzz",
		"r",
	}, got)

	// paths are planned against the original tree; each rename keeps its parent
	assert.Equal(t, "r/aaaaaaaaaa/bbbbbbbbbb/cccc", items[0].NewPath)
	assert.Equal(t, "r/aaaaaaaaaa/bbbb", items[1].NewPath)
	assert.Equal(t, "r/aaaa", items[2].NewPath)
}

func TestPlanDirectories_UnusableName(t *testing.T) {
	items := PlanDirectories([]fsops.Entry{dir("r/..hidden")}, testOptions(2, 6, false))

	require.Len(t, items, 1)
	assert.Equal(t, ActionSkippedOversized, items[0].Action)
	assert.NotEmpty(t, items[0].Reason)
}
