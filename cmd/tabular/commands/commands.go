// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the tabular CLI command tree. Each
// subcommand lives in its own file; Root assembles them under the
// shared dispatch, help, and suggestion machinery in
// cmd/tabular/cli.
package commands

import (
	"github.com/bureau-foundation/tabular/cmd/tabular/cli"
)

// Root builds and returns the complete tabular command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "tabular",
		Description: `Tabular: table rendering for the terminal.

Read structured records (CSV, JSON, YAML, CBOR, Markdown) and render
them as aligned text tables in any of the built-in border styles.
Supports one-shot rendering, live streams, and a full-screen viewer.`,
		Subcommands: []*cli.Command{
			renderCommand(),
			followCommand(),
			viewCommand(),
			stylesCommand(),
			bannerCommand(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Render a CSV file with the default style",
				Command:     "tabular render data.csv",
			},
			{
				Description: "Render JSON from stdin with heavy borders",
				Command:     "curl -s https://api.example.com/stats | tabular render --format json --style heavy",
			},
			{
				Description: "Follow a live NDJSON stream",
				Command:     "tail -f events.jsonl | tabular follow --format ndjson",
			},
			{
				Description: "Page through a wide table interactively",
				Command:     "tabular view measurements.csv.gz",
			},
			{
				Description: "See every border style with a sample",
				Command:     "tabular styles",
			},
			{
				Description: "Print a framed status message",
				Command:     "tabular banner 'deploy complete' --style double",
			},
		},
	}
}
