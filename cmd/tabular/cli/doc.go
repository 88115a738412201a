// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the tabular CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in
// cmd/tabular/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Flag definitions come from struct tags via [FlagsFromParams]: a params
// struct tagged with flag:/desc:/default: becomes a pflag.FlagSet, and
// parsed values land directly in the struct fields. Embedding
// [JSONOutput] adds a --json flag and the EmitJSON method for commands
// with machine-readable output.
//
// [ExitError] lets a command exit non-zero without an extra "error:"
// line when its output is already complete, [UsageError] marks
// command-line mistakes for exit code 2, and [NewCommandLogger]
// builds the stderr logger (text on a terminal, JSON when piped).
package cli
