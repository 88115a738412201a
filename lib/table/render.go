// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/tabular/lib/style"
)

// Layout binds a style and a resolved width vector to formatting
// options. Its line producers are pure: no writer, no trailing
// newline, and an empty string for rules the style omits.
type Layout struct {
	style     style.Style
	widths    []int
	precision int
	align     Align
	columns   int
}

// NewLayout validates the options against the headers and rows and
// resolves the column widths. All configuration errors surface here,
// before anything renders: an unknown style first, then invalid
// precision or alignment, then row shape, then width problems.
//
// Rows are only consulted for automatic width resolution; passing nil
// is fine when widths are explicit or when rows are not yet known (an
// incremental session does exactly that).
func NewLayout(headers []string, rows [][]any, opts Options) (*Layout, error) {
	st, err := opts.lookupStyle()
	if err != nil {
		return nil, err
	}
	precision, err := opts.precision()
	if err != nil {
		return nil, err
	}
	align, err := opts.align()
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("%w: a table needs at least one column", ErrShapeMismatch)
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("%w: row %d has %d cells for %d columns",
				ErrShapeMismatch, i, len(row), len(headers))
		}
	}
	widths, err := opts.Width.resolve(headers, rows, precision)
	if err != nil {
		return nil, err
	}
	return &Layout{
		style:     st,
		widths:    widths,
		precision: precision,
		align:     align,
		columns:   len(headers),
	}, nil
}

// Top renders the rule above the header.
func (l *Layout) Top() string {
	return renderRule(l.style.Top, l.widths)
}

// Separator renders the rule between the header and the first row.
func (l *Layout) Separator() string {
	return renderRule(l.style.BelowHeader, l.widths)
}

// Bottom renders the rule that closes the table.
func (l *Layout) Bottom() string {
	return renderRule(l.style.Bottom, l.widths)
}

// Header renders the header line. Header cells always center.
func (l *Layout) Header(headers []string) (string, error) {
	if len(headers) != l.columns {
		return "", fmt.Errorf("%w: %d headers for %d columns",
			ErrShapeMismatch, len(headers), l.columns)
	}
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = padCell(h, l.widths[i], AlignCenter)
	}
	return renderLine(cells, l.style.Row), nil
}

// Row renders one data line. The value count must match the column
// count; on mismatch nothing is rendered and the error wraps
// ErrShapeMismatch.
func (l *Layout) Row(values ...any) (string, error) {
	if len(values) != l.columns {
		return "", fmt.Errorf("%w: row has %d cells for %d columns",
			ErrShapeMismatch, len(values), l.columns)
	}
	cells := make([]string, len(values))
	for i, value := range values {
		cells[i] = formatCell(value, l.widths[i], l.precision, l.align)
	}
	return renderLine(cells, l.style.Row), nil
}

// Columns returns the column count the layout was built for.
func (l *Layout) Columns() int {
	return l.columns
}

// Widths returns a copy of the resolved content widths.
func (l *Layout) Widths() []int {
	widths := make([]int, len(l.widths))
	copy(widths, l.widths)
	return widths
}

// TotalWidth returns the display width shared by every line the
// layout produces.
func (l *Layout) TotalWidth() int {
	total := ansi.StringWidth(l.style.Row.Left) + ansi.StringWidth(l.style.Row.Right)
	total += (l.columns - 1) * ansi.StringWidth(l.style.Row.Sep)
	for _, w := range l.widths {
		total += w + 2
	}
	return total
}

// renderRule assembles one horizontal rule: corner, fill spanning
// each padded column, junctions between columns, corner.
func renderRule(r style.Rule, widths []int) string {
	if r.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(r.Left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(r.Junction)
		}
		b.WriteString(strings.Repeat(r.Fill, w+2))
	}
	b.WriteString(r.Right)
	return b.String()
}

// renderLine assembles one content line from already-padded cells,
// adding the one-space gutter on each side of every cell.
func renderLine(cells []string, d style.Divider) string {
	var b strings.Builder
	b.WriteString(d.Left)
	for i, c := range cells {
		if i > 0 {
			b.WriteString(d.Sep)
		}
		b.WriteString(" ")
		b.WriteString(c)
		b.WriteString(" ")
	}
	b.WriteString(d.Right)
	return b.String()
}
