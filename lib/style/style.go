// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownStyle is returned by Lookup for names not in the
// catalogue. Callers match it with errors.Is.
var ErrUnknownStyle = errors.New("unknown style")

// DefaultName is the style used when a caller does not pick one.
const DefaultName = "round"

// Rule holds the glyphs of one horizontal rule: the left corner, the
// fill repeated across each column, the junction between columns, and
// the right corner. A Rule with all four glyphs empty renders no line
// at all (the "plain" style has no rules, for example).
type Rule struct {
	Left     string
	Fill     string
	Junction string
	Right    string
}

// Empty reports whether the rule renders nothing.
func (r Rule) Empty() bool {
	return r.Left == "" && r.Fill == "" && r.Junction == "" && r.Right == ""
}

// Divider holds the vertical-edge glyphs of a content line: the left
// edge, the separator between cells, and the right edge.
type Divider struct {
	Left  string
	Sep   string
	Right string
}

// Style is one named entry of the catalogue.
//
//	╭───────┬───────╮   ← Top
//	│ name  │ count │   ← Row edges
//	├───────┼───────┤   ← BelowHeader
//	│ alpha │    12 │
//	╰───────┴───────╯   ← Bottom
type Style struct {
	Name        string
	Top         Rule
	BelowHeader Rule
	Bottom      Rule
	Row         Divider
}

var styles = map[string]Style{
	"round": {
		Name:        "round",
		Top:         Rule{"╭", "─", "┬", "╮"},
		BelowHeader: Rule{"├", "─", "┼", "┤"},
		Bottom:      Rule{"╰", "─", "┴", "╯"},
		Row:         Divider{"│", "│", "│"},
	},
	"grid": {
		Name:        "grid",
		Top:         Rule{"+", "-", "+", "+"},
		BelowHeader: Rule{"+", "=", "+", "+"},
		Bottom:      Rule{"+", "-", "+", "+"},
		Row:         Divider{"|", "|", "|"},
	},
	"fancy_grid": {
		Name:        "fancy_grid",
		Top:         Rule{"╒", "═", "╤", "╕"},
		BelowHeader: Rule{"╞", "═", "╪", "╡"},
		Bottom:      Rule{"╘", "═", "╧", "╛"},
		Row:         Divider{"│", "│", "│"},
	},
	"double": {
		Name:        "double",
		Top:         Rule{"╔", "═", "╦", "╗"},
		BelowHeader: Rule{"╠", "═", "╬", "╣"},
		Bottom:      Rule{"╚", "═", "╩", "╝"},
		Row:         Divider{"║", "║", "║"},
	},
	"heavy": {
		Name:        "heavy",
		Top:         Rule{"┏", "━", "┳", "┓"},
		BelowHeader: Rule{"┣", "━", "╋", "┫"},
		Bottom:      Rule{"┗", "━", "┻", "┛"},
		Row:         Divider{"┃", "┃", "┃"},
	},
	"clean": {
		Name:        "clean",
		Top:         Rule{"", "─", "─", ""},
		BelowHeader: Rule{"", "─", "─", ""},
		Bottom:      Rule{"", "─", "─", ""},
		Row:         Divider{"", " ", ""},
	},
	"plain": {
		Name: "plain",
		Row:  Divider{"", " ", ""},
	},
	"block": {
		Name:        "block",
		Top:         Rule{"◢", "■", "■", "◣"},
		BelowHeader: Rule{" ", "━", "━", " "},
		Bottom:      Rule{"◥", "■", "■", "◤"},
		Row:         Divider{" ", " ", " "},
	},
	"banner": {
		Name:   "banner",
		Top:    Rule{"╒", "═", "╤", "╕"},
		Bottom: Rule{"╘", "═", "╧", "╛"},
		Row:    Divider{"│", "│", "│"},
	},
}

// Lookup returns the named style. The name is case-sensitive; unknown
// names (including the empty string) return an error wrapping
// ErrUnknownStyle that lists what the catalogue offers.
func Lookup(name string) (Style, error) {
	s, ok := styles[name]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownStyle, name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Default returns the catalogue's default style.
func Default() Style {
	return styles[DefaultName]
}

// Names returns the catalogue's style names, sorted. The slice is
// freshly allocated on every call.
func Names() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
