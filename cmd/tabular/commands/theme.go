// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/bureau-foundation/tabular/lib/config"
	"github.com/bureau-foundation/tabular/lib/table"
)

// Theme is the set of lipgloss styles the CLI lays over rendered
// tables: header cells bold, border rules faint, data cells untouched.
// The engine pads with ANSI-aware width measurement, so styled and
// plain text occupy the same columns.
type Theme struct {
	// Header styles the header cell text.
	Header lipgloss.Style

	// Border styles the top, below-header, and bottom rules.
	Border lipgloss.Style

	// Title styles the view command's title bar.
	Title lipgloss.Style

	// Help styles the view command's key-binding footer.
	Help lipgloss.Style
}

// newTheme builds the styles for the given color mode. ColorAuto
// downgrades to plain output when stdout is not a terminal or NO_COLOR
// is set; ColorAlways keeps ANSI output even into a pipe. With the
// Ascii profile every style renders text unchanged, so a disabled
// theme produces byte-identical output to the unthemed engine.
func newTheme(mode config.ColorMode) Theme {
	profile := termenv.Ascii
	switch mode {
	case config.ColorAlways:
		profile = termenv.ANSI256
	case config.ColorAuto:
		if !termenv.EnvNoColor() && term.IsTerminal(int(os.Stdout.Fd())) {
			profile = termenv.ColorProfile()
		}
	}
	// SetColorProfile pins the profile explicitly: the renderer would
	// otherwise re-detect from the environment on first render.
	renderer := lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return Theme{
		Header: renderer.NewStyle().Bold(true),
		Border: renderer.NewStyle().Faint(true),
		Title:  renderer.NewStyle().Bold(true).Reverse(true),
		Help:   renderer.NewStyle().Faint(true),
	}
}

// themedLines renders a complete table through the layout with the
// theme applied: styled header text goes through the layout's
// ANSI-aware centering, and each non-empty rule line is wrapped in the
// border style. Line order matches table.Lines, including closing a
// rowless table directly with the bottom rule.
func themedLines(layout *table.Layout, headers []string, rows [][]any, theme Theme) ([]string, error) {
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = theme.Header.Render(h)
	}
	header, err := layout.Header(styled)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rows)+4)
	if top := layout.Top(); top != "" {
		lines = append(lines, theme.Border.Render(top))
	}
	lines = append(lines, header)
	if len(rows) > 0 {
		if sep := layout.Separator(); sep != "" {
			lines = append(lines, theme.Border.Render(sep))
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
		lines = append(lines, theme.Border.Render(bottom))
	}
	return lines, nil
}

// writeLines writes each line followed by a newline.
func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}
	return nil
}
