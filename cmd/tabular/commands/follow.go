// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tabular/cmd/tabular/cli"
	"github.com/bureau-foundation/tabular/lib/humantime"
	"github.com/bureau-foundation/tabular/lib/record"
	"github.com/bureau-foundation/tabular/lib/table"
)

type followParams struct {
	Format    string `flag:"format,f" desc:"stream format: auto, csv, ndjson" default:"auto"`
	Style     string `flag:"style,s" desc:"table style (see 'tabular styles')"`
	Width     string `flag:"width,w" desc:"column width: one number for every column or a comma-separated per-column list"`
	Precision int    `flag:"precision,p" desc:"significant digits for float cells"`
	Align     string `flag:"align" desc:"string cell alignment: left, right, center"`
	Color     string `flag:"color" desc:"color output: auto, always, never"`
	Verbose   bool   `flag:"verbose,v" desc:"log row totals and timing"`
}

func followCommand() *cli.Command {
	var params followParams
	return &cli.Command{
		Name:    "follow",
		Summary: "Stream records into a live table",
		Description: `Render a line-oriented stream (CSV or newline-delimited JSON)
incrementally: the frame and header appear immediately, each record
becomes a row as it arrives, and the closing rule is written on end of
input or interrupt. Ctrl-C closes the frame cleanly and exits with
code 130.

The column widths are fixed when the header arrives, before any data
exists, so they derive from the header labels alone. Pass --width to
size columns for the values you expect; longer cells are truncated
with an ellipsis rather than breaking the frame.`,
		Usage: "tabular follow [file] [flags]",
		Examples: []cli.Example{
			{
				Description: "Follow a growing NDJSON log",
				Command:     "tail -f events.jsonl | tabular follow --format ndjson --width 19,8,30",
			},
			{
				Description: "Watch a slow CSV producer",
				Command:     "./benchmark | tabular follow --width 24",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("follow", &params)
		},
		Run: func(args []string) error {
			return runFollow(&params, args)
		},
	}
}

func runFollow(params *followParams, args []string) error {
	if len(args) > 1 {
		return cli.Usagef("follow takes at most one file argument, got %d", len(args))
	}
	level := slog.LevelInfo
	if params.Verbose {
		level = slog.LevelDebug
	}

	var input io.Reader = os.Stdin
	source := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		input = f
		source = args[0]
	}
	logger := cli.NewCommandLoggerLevel(level).With("command", "follow", "source", source)

	format, err := record.ParseFormat(params.Format)
	if err != nil {
		return err
	}
	reader, err := record.NewStreamReader(input, format)
	if err != nil {
		return err
	}

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
	theme := newTheme(mode)

	// Styled header text measures at its plain width, so passing it
	// into the stream leaves the column widths unchanged.
	headers := reader.Headers()
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = theme.Header.Render(h)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The reader blocks in Next, so it runs in its own goroutine and
	// hands rows over a channel; the stream loop can then notice an
	// interrupt while a read is pending. Sends race the context so an
	// abandoned reader goroutine exits rather than blocking forever.
	type next struct {
		row []any
		err error
	}
	results := make(chan next)
	go func() {
		for {
			row, err := reader.Next()
			select {
			case results <- next{row: row, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	// Stream guarantees the closing rule on every exit path, including
	// the interrupt.
	started := time.Now()
	count := 0
	interrupted := false
	err = table.Stream(os.Stdout, styled, opts, func(emit func(values ...any) error) error {
		for {
			select {
			case <-ctx.Done():
				interrupted = true
				return nil
			case result := <-results:
				if result.err != nil {
					if errors.Is(result.err, io.EOF) {
						return nil
					}
					return result.err
				}
				if err := emit(result.row...); err != nil {
					return err
				}
				count++
			}
		}
	})
	if err != nil {
		return err
	}
	elapsed := humantime.Duration(time.Since(started))
	if interrupted {
		logger.Debug("interrupted", "rows", count, "elapsed", elapsed)
		return &cli.ExitError{Code: 130}
	}
	logger.Debug("stream ended", "rows", count, "elapsed", elapsed)
	return nil
}
