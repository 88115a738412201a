// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/tabular/lib/style"
)

// DefaultBannerWidth is the banner content width used when the
// message is short and no width is requested.
const DefaultBannerWidth = 30

// BannerOptions configures Banner. The zero value renders the
// "banner" style at DefaultBannerWidth.
type BannerOptions struct {
	// Width is the content width. Zero or negative means
	// DefaultBannerWidth; a width narrower than the message widens
	// to fit rather than truncating it.
	Width int

	// Style names a catalogue entry. Empty means "banner".
	Style string
}

// BannerLines renders a one-cell framed message: top rule, centered
// message, bottom rule. Centering is ANSI-aware, so colored messages
// sit where plain ones would.
func BannerLines(message string, opts BannerOptions) ([]string, error) {
	name := opts.Style
	if name == "" {
		name = "banner"
	}
	st, err := style.Lookup(name)
	if err != nil {
		return nil, err
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultBannerWidth
	}
	if w := ansi.StringWidth(message); w > width {
		width = w
	}
	widths := []int{width}
	lines := make([]string, 0, 3)
	if top := renderRule(st.Top, widths); top != "" {
		lines = append(lines, top)
	}
	lines = append(lines, renderLine([]string{padCell(message, width, AlignCenter)}, st.Row))
	if bottom := renderRule(st.Bottom, widths); bottom != "" {
		lines = append(lines, bottom)
	}
	return lines, nil
}

// Banner writes a framed message to w.
func Banner(w io.Writer, message string, opts BannerOptions) error {
	lines, err := BannerLines(message, opts)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write banner: %w", err)
		}
	}
	return nil
}
