// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the YAML defaults file for the tabular CLI.
//
// The file holds the rendering options a user would otherwise retype
// on every invocation: style, precision, alignment, width, and color
// mode. [Load] reads the path named by the TABULAR_CONFIG environment
// variable when set, otherwise tabular/config.yaml under the user
// configuration directory ($XDG_CONFIG_HOME or ~/.config). A missing
// file is not an error: rendering works out of the box, so Load
// returns [Default] in that case. An explicit TABULAR_CONFIG path
// that does not exist is an error, since naming a file is a statement
// that it should be there.
//
// Unknown keys are rejected during decoding so a typo fails loudly
// instead of silently keeping a default. Command-line flags override
// config values; nothing else does.
//
// Key exports:
//
//   - [Config] -- the defaults: Style, Precision, Align, Width, Color
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.TableOptions] -- conversion to lib/table options
package config
