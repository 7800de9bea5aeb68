package naming

import (
	"strings"
	"unicode/utf8"
)

// Separator is the path separator byte. A dot only starts an extension when
// the text in front of it contains no separator.
const Separator = '/'

// NameParts is a file name split into its raw stem and optional extensions.
// Extensions are stored without their leading dot; the Has flags tell an
// empty extension ("name.") apart from a missing one.
type NameParts struct {
	Stem         string
	Secondary    string
	Primary      string
	HasSecondary bool
	HasPrimary   bool
}

// Split decomposes name into stem, secondary and primary extension.
//
// The primary extension is whatever follows the last dot. The secondary
// extension is whatever follows the last dot of the remaining stem, and is
// only recognized when it is at most secondaryLen bytes long; secondaryLen 0
// disables it. A dot at the very start of the text (".bashrc") is part of
// the stem. Names that are not valid UTF-8 are returned whole as the stem.
func Split(name string, secondaryLen int) NameParts {
	parts := NameParts{Stem: name}
	if !utf8.ValidString(name) {
		return parts
	}

	stem, ext, ok := cutExtension(name)
	if !ok {
		return parts
	}
	parts.Stem, parts.Primary, parts.HasPrimary = stem, ext, true

	if secondaryLen <= 0 {
		return parts
	}
	stem, ext, ok = cutExtension(parts.Stem)
	if !ok || len(ext) > secondaryLen {
		return parts
	}
	parts.Stem, parts.Secondary, parts.HasSecondary = stem, ext, true
	return parts
}

// cutExtension splits s at its last dot.
func cutExtension(s string) (stem, ext string, ok bool) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 {
		return s, "", false
	}
	if strings.IndexByte(s[:i], Separator) >= 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

// Overhead returns the bytes the extensions occupy, dots included.
func (p NameParts) Overhead() int {
	n := 0
	if p.HasSecondary {
		n += len(p.Secondary) + 1
	}
	if p.HasPrimary {
		n += len(p.Primary) + 1
	}
	return n
}

// Join reassembles the original name.
func (p NameParts) Join() string {
	return p.WithStem(p.Stem)
}

// WithStem builds a name from stem and p's own extensions.
func (p NameParts) WithStem(stem string) string {
	var b strings.Builder
	b.Grow(len(stem) + p.Overhead())
	b.WriteString(stem)
	if p.HasSecondary {
		b.WriteByte('.')
		b.WriteString(p.Secondary)
	}
	if p.HasPrimary {
		b.WriteByte('.')
		b.WriteString(p.Primary)
	}
	return b.String()
}
