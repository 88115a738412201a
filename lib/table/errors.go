// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package table

import "errors"

var (
	// ErrShapeMismatch is returned when a row's cell count (or an
	// explicit width list's length) disagrees with the header's
	// column count.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidWidth is returned for non-positive column widths.
	ErrInvalidWidth = errors.New("invalid width")

	// ErrSessionClosed is returned by Session.Row after Close.
	ErrSessionClosed = errors.New("session closed")
)
