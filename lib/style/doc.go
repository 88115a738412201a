// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package style defines the catalogue of table border styles.
//
// A Style is a pure value: the glyphs for the three horizontal rules
// of a table (above the header, below the header, below the last row)
// and the vertical edges of a content line. The catalogue is fixed at
// compile time; Lookup returns copies and there is no registration
// API, so a Style obtained once is valid forever and safe to share.
//
// Every glyph in a style occupies either exactly one terminal cell or
// zero cells, consistently across all positions, which is what lets
// the renderer in lib/table guarantee that every line of a table has
// the same total display width.
package style
