// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bureau-foundation/tabular/cmd/tabular/cli"
	"github.com/bureau-foundation/tabular/cmd/tabular/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that manage their own output (like follow after an
		// interrupt) return an ExitError with the desired exit code
		// and nothing left to print.
		var silent *cli.ExitError
		if errors.As(err, &silent) {
			os.Exit(silent.Code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		// Usage errors carry code 2; anything else is a runtime
		// failure.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]
	// --version is an alias for the version subcommand.
	if len(args) > 0 && args[0] == "--version" {
		args = append([]string{"version"}, args[1:]...)
	}
	return commands.Root().Execute(args)
}
