// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"errors"
	"fmt"
	"io"
)

// Session renders a table incrementally: the frame opens when the
// session begins and closes exactly once, no matter how many rows
// arrive in between. Use it when rows trickle in (log followers,
// progress reporting) and buffering the whole set first would defeat
// the point.
//
// A Session belongs to a single goroutine.
type Session struct {
	writer io.Writer
	layout *Layout
	closed bool
}

// Begin validates the options, resolves widths, and immediately
// writes the top rule, the header line, and the below-header rule.
// Automatic widths resolve from the header cells alone (there are no
// rows to sample yet), so callers with long values should pass
// FixedWidth or ColumnWidths.
func Begin(w io.Writer, headers []string, opts Options) (*Session, error) {
	layout, err := NewLayout(headers, nil, opts)
	if err != nil {
		return nil, err
	}
	header, err := layout.Header(headers)
	if err != nil {
		return nil, err
	}
	for _, line := range []string{layout.Top(), header, layout.Separator()} {
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return nil, fmt.Errorf("write table header: %w", err)
		}
	}
	return &Session{writer: w, layout: layout}, nil
}

// Row writes one data line. After Close it fails with
// ErrSessionClosed; a cell-count mismatch fails with ErrShapeMismatch
// and writes nothing.
func (s *Session) Row(values ...any) error {
	if s.closed {
		return fmt.Errorf("%w: row arrived after Close", ErrSessionClosed)
	}
	line, err := s.layout.Row(values...)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(s.writer, line); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}

// Close writes the bottom rule. Only the first call writes anything;
// closing an already-closed session returns nil, which is what lets
// Stream close on every exit path without double borders.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if line := s.layout.Bottom(); line != "" {
		if _, err := fmt.Fprintln(s.writer, line); err != nil {
			return fmt.Errorf("write table footer: %w", err)
		}
	}
	return nil
}

// Layout returns the session's layout, for callers that want the
// resolved widths or total width of what they are emitting.
func (s *Session) Layout() *Layout {
	return s.layout
}

// Stream runs fn with a row emitter inside a session scope. The
// bottom rule is written exactly once on every path out of fn,
// including panics. fn's error comes back joined with any footer
// write error.
func Stream(w io.Writer, headers []string, opts Options, fn func(emit func(values ...any) error) error) error {
	session, err := Begin(w, headers, opts)
	if err != nil {
		return err
	}
	defer session.Close()
	return errors.Join(fn(session.Row), session.Close())
}
