package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultMaxLen matches the name limit of rclone's name encryption.
	DefaultMaxLen = 140

	// DefaultSecondaryExtLen keeps extensions like "tar" in "x.tar.gz".
	DefaultSecondaryExtLen = 6
)

// ErrInvalidOptions is wrapped by every validation failure.
var ErrInvalidOptions = errors.New("invalid options")

// ColorMode controls colored output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Color when stdout is a terminal (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors.
)

// ParseColorMode parses "auto", "always" or "never", case-insensitively.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: color must be auto, always or never (got %q)", ErrInvalidOptions, s)
	}
}

// Options holds the settings of one run. It is built once, validated, and
// then passed by pointer to every component; nothing mutates it afterwards.
type Options struct {
	// Roots are the paths to process, each recursively.
	Roots []string

	// MaxLen is the byte limit for every final name. Default: 140.
	MaxLen int

	// SecondaryExtLen is the longest secondary extension kept, in bytes.
	// 0 disables secondary extensions. Default: 6.
	SecondaryExtLen int

	// WordBoundaries snaps truncation back to the last space when cheap.
	WordBoundaries bool

	// DryRun computes and reports plans without renaming anything.
	DryRun bool

	// Journal records applied renames so that they can be undone.
	Journal bool

	// Color selects colored output.
	Color ColorMode
}

// DefaultOptions returns Options with every default applied and no roots.
func DefaultOptions() Options {
	return Options{
		MaxLen:          DefaultMaxLen,
		SecondaryExtLen: DefaultSecondaryExtLen,
		Color:           ColorAuto,
	}
}

// Validate checks ranges and that at least one root was given.
func (o *Options) Validate() error {
	if o.MaxLen <= 0 {
		return fmt.Errorf("%w: max length must be positive (got %d)", ErrInvalidOptions, o.MaxLen)
	}
	if o.SecondaryExtLen < 0 {
		return fmt.Errorf("%w: secondary extension length must not be negative (got %d)", ErrInvalidOptions, o.SecondaryExtLen)
	}
	if _, err := ParseColorMode(string(o.Color)); err != nil {
		return err
	}
	if len(o.Roots) == 0 {
		return fmt.Errorf("%w: need at least one path", ErrInvalidOptions)
	}
	for _, root := range o.Roots {
		if root == "" {
			return fmt.Errorf("%w: empty path", ErrInvalidOptions)
		}
	}
	return nil
}
