// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/tabular/lib/style"
	"github.com/bureau-foundation/tabular/lib/table"
)

// ColorMode decides whether rendered output carries ANSI color.
type ColorMode string

const (
	// ColorAuto colors output when stdout is a terminal and NO_COLOR
	// is unset.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever strips all color.
	ColorNever ColorMode = "never"
)

// ParseColorMode converts a flag or config value into a ColorMode.
// The empty string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("unknown color mode %q (valid: auto, always, never)", s)
}

// Config holds the rendering defaults for the tabular CLI. Flags
// override these per invocation.
type Config struct {
	// Style names a lib/style catalogue entry.
	// Default: round
	Style string `yaml:"style"`

	// Precision is the significant-digit count for float cells.
	// Default: 5
	Precision int `yaml:"precision"`

	// Align positions string cells: left, right, or center.
	// Default: left
	Align table.Align `yaml:"align"`

	// Width is a fixed per-column content width. Zero means automatic
	// sizing from the data.
	// Default: 0
	Width int `yaml:"width"`

	// Color controls ANSI color in output: auto, always, or never.
	// Default: auto
	Color ColorMode `yaml:"color"`
}

// Default returns the built-in defaults. These are what rendering
// uses when no config file exists.
func Default() *Config {
	return &Config{
		Style:     style.DefaultName,
		Precision: table.DefaultPrecision,
		Align:     table.AlignLeft,
		Width:     0,
		Color:     ColorAuto,
	}
}

// DefaultPath returns the config file location used when
// TABULAR_CONFIG is unset: tabular/config.yaml under the user
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}
	return filepath.Join(dir, "tabular", "config.yaml"), nil
}

// Load reads configuration from TABULAR_CONFIG if set, otherwise
// from [DefaultPath]. A missing file at the default path returns
// [Default]; a missing file at an explicit TABULAR_CONFIG path is an
// error.
func Load() (*Config, error) {
	if path := os.Getenv("TABULAR_CONFIG"); path != "" {
		return LoadFile(path)
	}

	path, err := DefaultPath()
	if err != nil {
		// No home directory means no config file; defaults apply.
		return Default(), nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile loads configuration from a specific file path. Fields the
// file does not mention keep their defaults; unknown keys are an
// error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors, collecting every
// problem rather than stopping at the first.
func (c *Config) Validate() error {
	var errs []error

	if _, err := style.Lookup(c.Style); err != nil {
		errs = append(errs, err)
	}

	if c.Precision <= 0 {
		errs = append(errs, fmt.Errorf("precision must be positive, got %d", c.Precision))
	}

	if _, err := table.ParseAlign(string(c.Align)); err != nil {
		errs = append(errs, err)
	}

	if c.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be non-negative, got %d", c.Width))
	}

	if _, err := ParseColorMode(string(c.Color)); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// TableOptions converts the defaults into lib/table options. Width 0
// becomes automatic sizing.
func (c *Config) TableOptions() table.Options {
	width := table.AutoWidth()
	if c.Width > 0 {
		width = table.FixedWidth(c.Width)
	}
	return table.Options{
		Style:     c.Style,
		Width:     width,
		Precision: c.Precision,
		Align:     c.Align,
	}
}
