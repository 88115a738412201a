// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package record reads tabular data from the formats the CLI accepts
// and funnels them all into one shape: a header row plus data rows of
// loosely typed cells.
//
// Supported formats:
//
//   - CSV: first record is the header row. Numeric-looking fields
//     become numbers so they right-align and honor precision.
//   - JSON / JSONC: an array of objects (column order follows the
//     first object's key order), an array of arrays (first array is
//     the header row), or newline-delimited objects. Comments and
//     trailing commas are stripped before decoding.
//   - YAML: a sequence of mappings or of sequences, with mapping key
//     order preserved.
//   - CBOR: a stream (or single array) of arrays or string-keyed
//     maps. Deterministic encoders sort map keys, so column order for
//     map records is the sorted key order.
//   - Markdown: the first GFM pipe table in the document.
//
// ReadFile additionally sniffs gzip, zstd, and lz4 compression by
// magic bytes and decompresses transparently, and detects the format
// from the file extension. Read with FormatAuto sniffs the content
// instead: a leading '[' or '{' means JSON, a leading '|' means
// Markdown, non-UTF-8 bytes mean CBOR, a "key:" or "- " first line
// means YAML, and anything else is treated as CSV.
package record
