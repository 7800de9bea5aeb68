package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML config file. Every field is optional; unset
// fields leave the corresponding option alone.
//
//	max_len = 140
//	secondary_ext_len = 6
//	word_boundaries = true
//	journal = true
//	color = "auto"
type FileConfig struct {
	MaxLen          *int    `toml:"max_len"`
	SecondaryExtLen *int    `toml:"secondary_ext_len"`
	WordBoundaries  *bool   `toml:"word_boundaries"`
	DryRun          *bool   `toml:"dry_run"`
	Journal         *bool   `toml:"journal"`
	Color           *string `toml:"color"`
}

// LoadFile reads and parses a config file. Unknown keys are rejected so
// that a typo does not silently fall back to a default. A missing file
// returns an error satisfying errors.Is(err, os.ErrNotExist).
func LoadFile(path string) (*FileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFile(content)
}

// ParseFile parses config file content.
func ParseFile(content []byte) (*FileConfig, error) {
	var cfg FileConfig
	dec := toml.NewDecoder(bytes.NewReader(content)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: unknown config key:\n%s", ErrInvalidOptions, strict.String())
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// LoadOptionalFile loads path, treating a missing file as an empty config.
func LoadOptionalFile(path string) (*FileConfig, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &FileConfig{}, nil
	}
	return cfg, err
}

// Apply copies every set field onto opts.
func (f *FileConfig) Apply(opts *Options) error {
	if f.MaxLen != nil {
		opts.MaxLen = *f.MaxLen
	}
	if f.SecondaryExtLen != nil {
		opts.SecondaryExtLen = *f.SecondaryExtLen
	}
	if f.WordBoundaries != nil {
		opts.WordBoundaries = *f.WordBoundaries
	}
	if f.DryRun != nil {
		opts.DryRun = *f.DryRun
	}
	if f.Journal != nil {
		opts.Journal = *f.Journal
	}
	if f.Color != nil {
		mode, err := ParseColorMode(*f.Color)
		if err != nil {
			return err
		}
		opts.Color = mode
	}
	return nil
}
