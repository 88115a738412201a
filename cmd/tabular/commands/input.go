// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/bureau-foundation/tabular/lib/config"
	"github.com/bureau-foundation/tabular/lib/record"
	"github.com/bureau-foundation/tabular/lib/table"
)

// loadConfig reads and validates the user's configuration file. A
// missing default file is fine (built-in defaults apply); a broken one
// is an error the user needs to see before any table renders.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// tableOptions merges the config-file defaults with the flags the user
// actually set. Empty or zero flag values mean "use the config"; the
// config's own zero values in turn mean the engine defaults.
func tableOptions(cfg *config.Config, styleFlag, widthFlag, alignFlag string, precisionFlag int) (table.Options, error) {
	opts := cfg.TableOptions()
	if styleFlag != "" {
		opts.Style = styleFlag
	}
	if precisionFlag != 0 {
		opts.Precision = precisionFlag
	}
	if alignFlag != "" {
		align, err := table.ParseAlign(alignFlag)
		if err != nil {
			return table.Options{}, err
		}
		opts.Align = align
	}
	if widthFlag != "" {
		spec, err := parseWidthFlag(widthFlag)
		if err != nil {
			return table.Options{}, err
		}
		opts.Width = spec
	}
	return opts, nil
}

// parseWidthFlag turns the --width flag into a WidthSpec: "0" or
// "auto" derives widths from content, a single number fixes every
// column, and a comma-separated list sets each column explicitly.
func parseWidthFlag(value string) (table.WidthSpec, error) {
	if value == "0" || value == "auto" {
		return table.AutoWidth(), nil
	}
	if !strings.Contains(value, ",") {
		width, err := strconv.Atoi(value)
		if err != nil {
			return table.WidthSpec{}, fmt.Errorf("invalid width %q (use 0, a number, or a comma-separated list)", value)
		}
		return table.FixedWidth(width), nil
	}
	parts := strings.Split(value, ",")
	widths := make([]int, len(parts))
	for i, part := range parts {
		width, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return table.WidthSpec{}, fmt.Errorf("invalid width %q in %q", part, value)
		}
		widths[i] = width
	}
	return table.ColumnWidths(widths...), nil
}

// maxWidthLimit resolves the --max-width flag into a column limit:
// "0" disables clamping, a positive number is the limit, and "auto"
// reads the terminal width. "auto" without a terminal disables
// clamping, since there is nothing to fit to.
func maxWidthLimit(value string) (int, error) {
	if value == "auto" {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			return width, nil
		}
		return 0, nil
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("invalid max width %q (use 0, a positive number, or auto)", value)
	}
	return limit, nil
}

// colorMode resolves the effective color mode: the --color flag when
// set, the config file otherwise.
func colorMode(cfg *config.Config, colorFlag string) (config.ColorMode, error) {
	if colorFlag == "" {
		return cfg.Color, nil
	}
	return config.ParseColorMode(colorFlag)
}

// readInput resolves the positional file argument: a path opens the
// file (with extension-based format detection and transparent
// decompression), while no argument or "-" reads stdin. The returned
// name labels the source in logs and the view title bar.
func readInput(args []string, format record.Format) (*record.Set, string, error) {
	if len(args) == 0 || args[0] == "-" {
		set, err := record.Read(os.Stdin, format)
		return set, "stdin", err
	}
	set, err := record.ReadFile(args[0], format)
	return set, args[0], err
}
