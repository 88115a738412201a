// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"

	"github.com/bureau-foundation/tabular/lib/style"
)

// DefaultPrecision is the significant-digit count used for float
// cells when Options.Precision is zero.
const DefaultPrecision = 5

// Align selects how string cells sit inside their column. Numeric
// cells always right-align and header cells always center; Align
// governs everything else.
type Align string

const (
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
)

// ParseAlign converts a configuration or flag value into an Align.
// The empty string means AlignLeft.
func ParseAlign(s string) (Align, error) {
	switch Align(s) {
	case "":
		return AlignLeft, nil
	case AlignLeft, AlignRight, AlignCenter:
		return Align(s), nil
	}
	return "", fmt.Errorf("unknown alignment %q (valid: left, right, center)", s)
}

// Options configures a table. The zero value renders with the default
// style, automatic column widths, five significant digits, and
// left-aligned strings.
type Options struct {
	// Style names a catalogue entry from lib/style. Empty means
	// style.DefaultName.
	Style string

	// Width selects fixed, per-column, or automatic widths. The
	// zero value is AutoWidth().
	Width WidthSpec

	// Precision is the significant-digit count for float cells.
	// Zero means DefaultPrecision.
	Precision int

	// Align positions string cells. Empty means AlignLeft.
	Align Align
}

// lookupStyle resolves the style name. This runs before any other
// validation: when a call is wrong in several ways at once, the style
// error is the one reported.
func (o Options) lookupStyle() (style.Style, error) {
	if o.Style == "" {
		return style.Default(), nil
	}
	return style.Lookup(o.Style)
}

func (o Options) precision() (int, error) {
	if o.Precision == 0 {
		return DefaultPrecision, nil
	}
	if o.Precision < 0 {
		return 0, fmt.Errorf("precision must be positive, got %d", o.Precision)
	}
	return o.Precision, nil
}

func (o Options) align() (Align, error) {
	return ParseAlign(string(o.Align))
}
