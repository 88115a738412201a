// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"
	"io"
)

// Lines renders a complete table and returns its lines, top rule to
// bottom rule, without trailing newlines. Styles that omit a rule
// contribute no line for it. A table with no rows closes the header
// directly with the bottom rule instead of stacking two rules.
func Lines(headers []string, rows [][]any, opts Options) ([]string, error) {
	layout, err := NewLayout(headers, rows, opts)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rows)+4)
	if top := layout.Top(); top != "" {
		lines = append(lines, top)
	}
	header, err := layout.Header(headers)
	if err != nil {
		return nil, err
	}
	lines = append(lines, header)
	if len(rows) > 0 {
		if sep := layout.Separator(); sep != "" {
			lines = append(lines, sep)
		}
		for _, row := range rows {
			line, err := layout.Row(row...)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
	}
	if bottom := layout.Bottom(); bottom != "" {
		lines = append(lines, bottom)
	}
	return lines, nil
}

// Render writes a complete table to w, one line at a time. All
// validation happens before the first byte is written, so a non-nil
// error from a bad configuration means nothing was emitted.
func Render(w io.Writer, headers []string, rows [][]any, opts Options) error {
	lines, err := Lines(headers, rows, opts)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}
	return nil
}
