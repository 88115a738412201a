// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

type widthKind int

const (
	widthAuto widthKind = iota
	widthFixed
	widthColumns
)

// WidthSpec selects how column content widths are chosen. Construct
// one with FixedWidth, ColumnWidths, or AutoWidth; the zero value is
// AutoWidth. Widths are content widths; the renderer adds one space
// of padding on each side of every cell.
type WidthSpec struct {
	kind    widthKind
	fixed   int
	columns []int
}

// FixedWidth gives every column the same content width.
func FixedWidth(w int) WidthSpec {
	return WidthSpec{kind: widthFixed, fixed: w}
}

// ColumnWidths sets an explicit content width per column. The list
// length must match the header's column count.
func ColumnWidths(ws ...int) WidthSpec {
	columns := make([]int, len(ws))
	copy(columns, ws)
	return WidthSpec{kind: widthColumns, columns: columns}
}

// AutoWidth derives each column's width from the widest formatted
// cell in that column (header included).
func AutoWidth() WidthSpec {
	return WidthSpec{kind: widthAuto}
}

// IsAuto reports whether the spec derives widths from content.
func (s WidthSpec) IsAuto() bool {
	return s.kind == widthAuto
}

// resolve produces one positive content width per column. Rows are
// only consulted for automatic widths; they must already be
// shape-checked against the headers.
func (s WidthSpec) resolve(headers []string, rows [][]any, precision int) ([]int, error) {
	columns := len(headers)
	switch s.kind {
	case widthFixed:
		if s.fixed <= 0 {
			return nil, fmt.Errorf("%w: fixed width %d must be positive", ErrInvalidWidth, s.fixed)
		}
		widths := make([]int, columns)
		for i := range widths {
			widths[i] = s.fixed
		}
		return widths, nil

	case widthColumns:
		if len(s.columns) != columns {
			return nil, fmt.Errorf("%w: %d widths for %d columns",
				ErrShapeMismatch, len(s.columns), columns)
		}
		widths := make([]int, columns)
		for i, w := range s.columns {
			if w <= 0 {
				return nil, fmt.Errorf("%w: column %d width %d must be positive",
					ErrInvalidWidth, i, w)
			}
			widths[i] = w
		}
		return widths, nil

	default:
		widths := make([]int, columns)
		for i, h := range headers {
			widths[i] = ansi.StringWidth(h)
		}
		for _, row := range rows {
			for i, value := range row {
				if w := ansi.StringWidth(cellText(value, precision)); w > widths[i] {
					widths[i] = w
				}
			}
		}
		for i := range widths {
			if widths[i] < 1 {
				widths[i] = 1
			}
		}
		return widths, nil
	}
}

// FitWidth returns a width vector shrunk so the rendered table fits
// in the given number of terminal columns, at least 3 cells of
// content per column. Columns shrink proportionally to their resolved
// width. When the table already fits, the current widths come back
// unchanged. The result is always a fresh slice, suitable for
// ColumnWidths.
func (l *Layout) FitWidth(available int) []int {
	widths := l.Widths()
	chrome := l.TotalWidth()
	content := 0
	for _, w := range widths {
		content += w
	}
	chrome -= content
	if content+chrome <= available {
		return widths
	}
	usable := available - chrome
	if usable < len(widths)*3 {
		usable = len(widths) * 3
	}
	for i := range widths {
		widths[i] = (widths[i] * usable) / content
		if widths[i] < 3 {
			widths[i] = 3
		}
	}
	return widths
}
