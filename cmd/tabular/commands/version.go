// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tabular/cmd/tabular/cli"
	"github.com/bureau-foundation/tabular/lib/version"
)

type versionParams struct {
	cli.JSONOutput
	Full bool `flag:"full" desc:"include Go version and platform"`
}

// versionInfo is the JSON shape of the version command.
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Dirty     bool   `json:"dirty"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func versionCommand() *cli.Command {
	var params versionParams
	return &cli.Command{
		Name:    "version",
		Summary: "Print the tabular version",
		Usage:   "tabular version [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Usagef("version takes no arguments, got %d", len(args))
			}
			return runVersion(&params)
		},
	}
}

func runVersion(params *versionParams) error {
	if done, err := params.EmitJSON(versionInfo{
		Version:   version.Version,
		Commit:    version.GitCommit,
		Dirty:     version.GitDirty == "true",
		BuildTime: version.BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}); done {
		return err
	}

	if params.Full {
		fmt.Printf("tabular %s\n", version.Full())
		return nil
	}
	fmt.Printf("tabular %s\n", version.Info())
	return nil
}
