// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tabular/cmd/tabular/cli"
	"github.com/bureau-foundation/tabular/lib/style"
	"github.com/bureau-foundation/tabular/lib/table"
)

type stylesParams struct {
	cli.JSONOutput
}

// styleListing is one entry in the styles output: the style name and a
// small table rendered in that style.
type styleListing struct {
	Name   string   `json:"name"`
	Sample []string `json:"sample"`
}

func stylesCommand() *cli.Command {
	var params stylesParams
	return &cli.Command{
		Name:    "styles",
		Summary: "List the available table styles",
		Description: `Print every registered table style with a small sample table so
the border characters can be compared at a glance. The style names are
what 'render --style', 'follow --style', and 'view --style' accept.`,
		Usage: "tabular styles [flags]",
		Examples: []cli.Example{
			{
				Description: "Show all styles with samples",
				Command:     "tabular styles",
			},
			{
				Description: "Style names and samples as JSON",
				Command:     "tabular styles --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("styles", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Usagef("styles takes no arguments, got %d", len(args))
			}
			return runStyles(&params)
		},
	}
}

func runStyles(params *stylesParams) error {
	headers := []string{"name", "count"}
	rows := [][]any{
		{"alpha", int64(12)},
		{"beta", int64(3)},
	}

	names := style.Names()
	listings := make([]styleListing, 0, len(names))
	for _, name := range names {
		lines, err := table.Lines(headers, rows, table.Options{Style: name})
		if err != nil {
			return fmt.Errorf("render sample for style %q: %w", name, err)
		}
		listings = append(listings, styleListing{Name: name, Sample: lines})
	}

	if done, err := params.EmitJSON(listings); done {
		return err
	}

	for i, listing := range listings {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(listing.Name)
		for _, line := range listing.Sample {
			fmt.Println("  " + line)
		}
	}
	return nil
}
