// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "tabular",
		Subcommands: []*Command{
			{
				Name: "version",
				Run: func(args []string) error {
					called = "version"
					return nil
				},
			},
			{
				Name: "render",
				Run: func(args []string) error {
					called = "render"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"render"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "render" {
		t.Errorf("dispatched to %q, want %q", called, "render")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "tabular",
		Subcommands: []*Command{
			{
				Name: "styles",
				Subcommands: []*Command{
					{
						Name: "list",
						Run: func(args []string) error {
							called = "styles list"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"styles", "list", "extra-arg"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "styles list" {
		t.Errorf("dispatched to %q, want %q", called, "styles list")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "extra-arg" {
		t.Errorf("args = %v, want [extra-arg]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var styleName string
	var input string

	command := &Command{
		Name: "render",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("render", pflag.ContinueOnError)
			flagSet.StringVar(&styleName, "style", "round", "table style")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				input = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--style", "heavy", "data.csv"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if styleName != "heavy" {
		t.Errorf("styleName = %q, want %q", styleName, "heavy")
	}
	if input != "data.csv" {
		t.Errorf("input = %q, want %q", input, "data.csv")
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "render",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("render", pflag.ContinueOnError)
			flagSet.Bool("no-header", false, "treat every row as data")
			flagSet.String("style", "round", "table style")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--stlye"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	errStr := err.Error()
	if !strings.Contains(errStr, "did you mean --style") {
		t.Errorf("error = %q, want suggestion for '--style'", errStr)
	}
	// Suggestion should be on the same line as the error, not buried.
	if !strings.Contains(errStr, "stlye") {
		t.Errorf("error = %q, should mention the bad flag", errStr)
	}
	// Should include a pointer to --help.
	if !strings.Contains(errStr, "--help") {
		t.Errorf("error = %q, should point to --help", errStr)
	}
}

func TestCommand_Execute_UnknownFlagNoSuggestion(t *testing.T) {
	command := &Command{
		Name: "render",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("render", pflag.ContinueOnError)
			flagSet.Bool("no-header", false, "treat every row as data")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--zzzzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest for distant flag", err.Error())
	}
	if !strings.Contains(err.Error(), "--help") {
		t.Errorf("error = %q, should point to --help", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "tabular",
		Subcommands: []*Command{
			{Name: "render"},
			{Name: "follow"},
			{Name: "version"},
		},
	}

	err := root.Execute([]string{"redner"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "did you mean \"render\"") {
		t.Errorf("error = %q, want suggestion for 'render'", err.Error())
	}
}

func TestCommand_Execute_UnknownSubcommandNoSuggestion(t *testing.T) {
	root := &Command{
		Name: "tabular",
		Subcommands: []*Command{
			{Name: "render"},
			{Name: "follow"},
		},
	}

	err := root.Execute([]string{"zzzzzzz"})
	if err == nil {
		t.Fatal("Execute() = nil, want error for unknown subcommand")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not contain suggestion for distant input", err.Error())
	}
}

func TestCommand_Execute_HelpFlag(t *testing.T) {
	for _, helpArg := range []string{"-h", "--help", "help"} {
		t.Run(helpArg, func(t *testing.T) {
			root := &Command{
				Name:    "tabular",
				Summary: "Render structured records as text tables",
				Subcommands: []*Command{
					{Name: "render", Summary: "Render a file as a table"},
				},
			}

			err := root.Execute([]string{helpArg})
			if err != nil {
				t.Errorf("Execute(%q) error: %v", helpArg, err)
			}
		})
	}
}

func TestCommand_Execute_NoArgsShowsHelp(t *testing.T) {
	root := &Command{
		Name: "tabular",
		Subcommands: []*Command{
			{Name: "render", Summary: "Render a file as a table"},
		},
	}

	err := root.Execute([]string{})
	if err == nil {
		t.Fatal("Execute() = nil, want error for missing subcommand")
	}
	if !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %q, want 'subcommand required'", err.Error())
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	command := &Command{
		Name:        "tabular",
		Description: "Table rendering for structured records.",
		Subcommands: []*Command{
			{Name: "render", Summary: "Render a file as a table"},
			{Name: "follow", Summary: "Stream records into a live table"},
			{Name: "version", Summary: "Print version information"},
		},
		Examples: []Example{
			{
				Description: "Render a CSV file",
				Command:     "tabular render data.csv",
			},
			{
				Description: "Follow a stream of newline-delimited JSON",
				Command:     "tabular follow --format ndjson events.jsonl",
			},
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	// Verify structural elements are present.
	for _, want := range []string{
		"Table rendering for structured records.",
		"Usage:",
		"tabular <command> [flags]",
		"Commands:",
		"render",
		"Render a file as a table",
		"follow",
		"Stream records into a live table",
		"Examples:",
		"tabular render data.csv",
		"tabular follow --format ndjson",
		"Run 'tabular <command> --help'",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_PrintHelp_WithFlags(t *testing.T) {
	command := &Command{
		Name:    "render",
		Summary: "Render a file as a table",
		Usage:   "tabular render [file] [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("render", pflag.ContinueOnError)
			flagSet.String("style", "round", "table border style")
			flagSet.Bool("no-header", false, "treat every row as data")
			return flagSet
		},
	}

	var buffer bytes.Buffer
	command.PrintHelp(&buffer)
	output := buffer.String()

	for _, want := range []string{
		"tabular render [file] [flags]",
		"Flags:",
		"style",
		"no-header",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q\n\nFull output:\n%s", want, output)
		}
	}
}

func TestCommand_FullName(t *testing.T) {
	root := &Command{Name: "tabular"}
	styles := &Command{Name: "styles", parent: root}
	list := &Command{Name: "list", parent: styles}

	if got := root.fullName(); got != "tabular" {
		t.Errorf("root.fullName() = %q, want %q", got, "tabular")
	}
	if got := styles.fullName(); got != "tabular styles" {
		t.Errorf("styles.fullName() = %q, want %q", got, "tabular styles")
	}
	if got := list.fullName(); got != "tabular styles list" {
		t.Errorf("list.fullName() = %q, want %q", got, "tabular styles list")
	}
}

func TestCommand_Execute_UsageErrorsCarryExitCode2(t *testing.T) {
	root := &Command{
		Name: "tabular",
		Subcommands: []*Command{
			{Name: "render", Run: func(args []string) error { return nil }},
		},
	}

	for name, args := range map[string][]string{
		"unknown command": {"bogus"},
		"no subcommand":   {},
	} {
		err := root.Execute(args)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		var coder interface{ ExitCode() int }
		if !errors.As(err, &coder) {
			t.Fatalf("%s: error %v carries no exit code", name, err)
		}
		if got := coder.ExitCode(); got != 2 {
			t.Errorf("%s: exit code = %d, want 2", name, got)
		}
	}
}
