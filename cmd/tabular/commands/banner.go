// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tabular/cmd/tabular/cli"
	"github.com/bureau-foundation/tabular/lib/table"
)

type bannerParams struct {
	Width int    `flag:"width,w" desc:"banner content width (messages wider than this widen the box)"`
	Style string `flag:"style,s" desc:"border style (see 'tabular styles')"`
}

func bannerCommand() *cli.Command {
	var params bannerParams
	return &cli.Command{
		Name:    "banner",
		Summary: "Print a message in a single-cell box",
		Description: `Print a one-line message centered in a box, for marking sections
of build or deploy output. The box defaults to the heavy "banner"
borders and widens to fit messages longer than the requested width.

Multiple arguments are joined with spaces, so quoting the message is
optional.`,
		Usage: "tabular banner <message...> [flags]",
		Examples: []cli.Example{
			{
				Description: "Mark a phase in a build log",
				Command:     "tabular banner deploy complete",
			},
			{
				Description: "A wider banner with double-line borders",
				Command:     "tabular banner 'phase 2: migration' --width 50 --style double",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("banner", &params)
		},
		Run: func(args []string) error {
			return runBanner(&params, args)
		},
	}
}

func runBanner(params *bannerParams, args []string) error {
	if len(args) == 0 {
		return cli.Usagef("banner requires a message argument")
	}
	message := strings.Join(args, " ")
	return table.Banner(os.Stdout, message, table.BannerOptions{
		Width: params.Width,
		Style: params.Style,
	})
}
