// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package table renders fixed-width text tables for terminals.
//
// The package has three entry surfaces, all built on the same layout
// core:
//
//   - Render / Lines: batch rendering of a complete header + row set.
//   - Begin / Stream: an incremental session that writes the header
//     immediately and appends rows as they arrive, guaranteeing the
//     closing border exactly once however the caller exits.
//   - Layout: the pure line producers (Top, Header, Separator, Row,
//     Bottom) for callers that compose output themselves.
//
// Batch use:
//
//	err := table.Render(os.Stdout,
//		[]string{"name", "count"},
//		[][]any{{"alpha", 12}, {"beta", 7}},
//		table.Options{Style: "round"})
//
// Incremental use:
//
//	err := table.Stream(os.Stdout, []string{"time", "event"}, opts,
//		func(emit func(values ...any) error) error {
//			for event := range events {
//				if err := emit(event.Time, event.Name); err != nil {
//					return err
//				}
//			}
//			return nil
//		})
//
// Widths are display widths, not byte or rune counts: ANSI escape
// sequences contribute nothing and East Asian wide runes contribute
// two cells, so colored cells line up with plain ones. Every line of
// a rendered table has the same total display width.
//
// All validation (style name, width spec, row shape) happens eagerly,
// before the first byte is written. Configuration errors wrap the
// package sentinels ErrInvalidWidth and ErrShapeMismatch, or
// style.ErrUnknownStyle; match them with errors.Is.
//
// The package performs no locking. A Session or Layout belongs to one
// goroutine; concurrent renders to distinct writers need no
// coordination beyond that.
package table
