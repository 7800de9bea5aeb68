package naming

import (
	"strings"
	"unicode/utf8"
)

// WordBoundaryTolerance is the most bytes word-boundary snapping may give
// up beyond the plain byte cut.
const WordBoundaryTolerance = 10

// TruncateStem cuts stem to at most budget bytes.
//
// A stem that already fits is returned as is. Otherwise the first budget
// bytes are kept and trailing bytes are dropped until the prefix is valid
// UTF-8. With wordBoundaries set, the result is further cut at its last
// space when that loses fewer than WordBoundaryTolerance bytes.
func TruncateStem(stem string, budget int, wordBoundaries bool) string {
	if len(stem) <= budget {
		return stem
	}
	if budget < 0 {
		budget = 0
	}

	cut := ValidPrefix(stem[:budget])
	if wordBoundaries {
		cut = snapToWord(cut, budget)
	}
	return cut
}

// TruncateDirName truncates a directory name. Directories carry no
// extensions, so the whole name is the stem and maxLen is the budget.
func TruncateDirName(name string, maxLen int, wordBoundaries bool) string {
	return TruncateStem(name, maxLen, wordBoundaries)
}

// ValidPrefix returns the longest prefix of s that is valid UTF-8. It stops
// in front of the first byte that does not start a complete code point, so
// an incomplete sequence at the end is dropped as well.
func ValidPrefix(s string) string {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return s[:i]
		}
		i += size
	}
	return s
}

// snapToWord drops the partial word after the last space of s, as long as
// that space sits past budget-WordBoundaryTolerance.
func snapToWord(s string, budget int) string {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 || i <= saturatingSub(budget, WordBoundaryTolerance) {
		return s
	}
	return s[:i]
}
