package planner

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/danieljhkim/namefit/internal/naming"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var siblingExtensions = []string{"txt", "json", "en.srt", "tar.gz", "markdown", "c", ""}

// genStem generates non-empty stems without dots or separators.
func genStem() gopter.Gen {
	return gen.OneGenOf(
		gen.AlphaString(),
		gen.UnicodeString(unicode.Katakana),
		gen.Const("some words with spaces in between"),
	).SuchThat(func(s string) bool { return s != "" })
}

// genExtensionSet picks a non-empty subset of siblingExtensions.
func genExtensionSet() gopter.Gen {
	return gen.IntRange(1, 1<<len(siblingExtensions)-1).Map(func(mask int) []string {
		var exts []string
		for i, ext := range siblingExtensions {
			if mask&(1<<i) != 0 {
				exts = append(exts, ext)
			}
		}
		return exts
	})
}

func siblingPaths(stem string, exts []string) []string {
	paths := make([]string, 0, len(exts))
	for _, ext := range exts {
		name := stem
		if ext != "" {
			name += "." + ext
		}
		paths = append(paths, "r/"+name)
	}
	return paths
}

func TestSiblingGroupProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("renamed siblings share one stem and fit", prop.ForAll(
		func(stem string, exts []string, maxLen int, words bool) bool {
			items := planFiles(testOptions(maxLen, 6, words), siblingPaths(stem, exts)...)

			stems := map[string]bool{}
			for _, item := range items {
				if item.Action == ActionSkippedOversized {
					continue
				}
				name := item.NewName()
				if len(name) > maxLen || !utf8.ValidString(name) {
					return false
				}
				overhead := naming.Split(item.OldName(), 6).Overhead()
				stems[name[:len(name)-overhead]] = true
			}
			return len(stems) <= 1
		},
		genStem(),
		genExtensionSet(),
		gen.IntRange(1, 40),
		gen.Bool(),
	))

	properties.Property("planning a fitted name again changes nothing", prop.ForAll(
		func(stem string, maxLen int, words bool) bool {
			opts := testOptions(maxLen, 6, words)

			first := planFiles(opts, "r/"+stem+".txt")
			if first[0].Action != ActionRenamed {
				return true
			}
			second := planFiles(opts, first[0].NewPath)
			return second[0].Action == ActionUnchanged
		},
		genStem(),
		gen.IntRange(5, 40),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
