// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tabular/cmd/tabular/cli"
	"github.com/bureau-foundation/tabular/lib/humantime"
	"github.com/bureau-foundation/tabular/lib/record"
	"github.com/bureau-foundation/tabular/lib/table"
)

type renderParams struct {
	Format    string `flag:"format,f" desc:"input format: auto, csv, json, yaml, cbor, markdown" default:"auto"`
	Style     string `flag:"style,s" desc:"table style (see 'tabular styles')"`
	Width     string `flag:"width,w" desc:"column width: 0 for automatic, one number for every column, or a comma-separated per-column list"`
	Precision int    `flag:"precision,p" desc:"significant digits for float cells"`
	Align     string `flag:"align" desc:"string cell alignment: left, right, center"`
	Color     string `flag:"color" desc:"color output: auto, always, never"`
	MaxWidth  string `flag:"max-width" desc:"shrink columns so the table fits this many terminal columns: 0 disables, auto reads the terminal size" default:"0"`
	Verbose   bool   `flag:"verbose,v" desc:"log the sniffed format, row counts, and timing"`
}

func renderCommand() *cli.Command {
	var params renderParams
	return &cli.Command{
		Name:    "render",
		Summary: "Render a file as a table",
		Description: `Read structured records and render them as an aligned text table.

With no file argument (or "-"), records come from stdin. The format is
sniffed from the file extension and content unless --format picks one.
Compressed inputs (.gz, .zst, .lz4) are decompressed transparently.

Flags default to the values in the configuration file ($TABULAR_CONFIG
or ~/.config/tabular/config.yaml); flags set on the command line win.`,
		Usage: "tabular render [file] [flags]",
		Examples: []cli.Example{
			{
				Description: "Render a CSV file",
				Command:     "tabular render data.csv",
			},
			{
				Description: "Render JSON from stdin with grid borders",
				Command:     "cat stats.json | tabular render --format json --style grid",
			},
			{
				Description: "Fixed 12-column widths, two significant digits",
				Command:     "tabular render data.csv --width 12 --precision 2",
			},
			{
				Description: "Per-column widths for a three-column table",
				Command:     "tabular render data.csv --width 20,8,8",
			},
			{
				Description: "Shrink a wide table to fit the terminal",
				Command:     "tabular render wide.csv --max-width auto",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("render", &params)
		},
		Run: func(args []string) error {
			return runRender(&params, args)
		},
	}
}

func runRender(params *renderParams, args []string) error {
	if len(args) > 1 {
		return cli.Usagef("render takes at most one file argument, got %d", len(args))
	}
	level := slog.LevelInfo
	if params.Verbose {
		level = slog.LevelDebug
	}
	logger := cli.NewCommandLoggerLevel(level).With("command", "render")
	started := time.Now()

	format, err := record.ParseFormat(params.Format)
	if err != nil {
		return err
	}
	set, source, err := readInput(args, format)
	if err != nil {
		return err
	}
	logger.Debug("records read",
		"source", source,
		"rows", len(set.Rows),
		"columns", len(set.Headers),
	)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := tableOptions(cfg, params.Style, params.Width, params.Align, params.Precision)
	if err != nil {
		return err
	}
	mode, err := colorMode(cfg, params.Color)
	if err != nil {
		return err
	}

	layout, err := table.NewLayout(set.Headers, set.Rows, opts)
	if err != nil {
		return err
	}
	limit, err := maxWidthLimit(params.MaxWidth)
	if err != nil {
		return err
	}
	if limit > 0 && layout.TotalWidth() > limit {
		opts.Width = table.ColumnWidths(layout.FitWidth(limit)...)
		layout, err = table.NewLayout(set.Headers, set.Rows, opts)
		if err != nil {
			return err
		}
	}

	lines, err := themedLines(layout, set.Headers, set.Rows, newTheme(mode))
	if err != nil {
		return err
	}
	if err := writeLines(os.Stdout, lines); err != nil {
		return err
	}
	logger.Debug("table rendered",
		"rows", len(set.Rows),
		"width", layout.TotalWidth(),
		"elapsed", humantime.Duration(time.Since(started)),
	)
	return nil
}
