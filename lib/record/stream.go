// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// StreamReader yields rows one at a time from line-oriented input:
// CSV (first record is the header row) or newline-delimited JSON
// objects (columns from the first object's key order). It exists for
// incremental rendering, where buffering the whole input first would
// defeat the point.
type StreamReader struct {
	headers []string
	nextRow func() ([]any, error)
}

// NewStreamReader prepares a streaming read. Construction consumes
// the header: the first CSV record, or the first JSON object (which
// is also the first data row). With FormatAuto the first byte
// decides: '{' means NDJSON, anything else CSV. Unlike Read, the
// JSON path expects plain NDJSON; comment stripping needs the whole
// input in hand.
func NewStreamReader(r io.Reader, format Format) (*StreamReader, error) {
	buffered := bufio.NewReader(r)
	if format == FormatAuto {
		head, err := buffered.Peek(1)
		if err != nil {
			return nil, fmt.Errorf("read stream: %w", err)
		}
		if head[0] == '{' {
			format = FormatJSON
		} else {
			format = FormatCSV
		}
	}
	switch format {
	case FormatCSV:
		return newCSVStream(buffered)
	case FormatJSON:
		return newJSONStream(buffered)
	}
	return nil, fmt.Errorf("format %q does not support streaming (use csv or ndjson)", format)
}

// Headers returns the column names read during construction.
func (s *StreamReader) Headers() []string {
	return s.headers
}

// Next returns the next data row, or io.EOF when the stream ends.
func (s *StreamReader) Next() ([]any, error) {
	return s.nextRow()
}

func newCSVStream(r io.Reader) (*StreamReader, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("CSV stream has no header row")
		}
		return nil, fmt.Errorf("parse CSV header: %w", err)
	}
	return &StreamReader{
		headers: headers,
		nextRow: func() ([]any, error) {
			fields, err := reader.Read()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil, io.EOF
				}
				return nil, fmt.Errorf("parse CSV row: %w", err)
			}
			row := make([]any, len(fields))
			for i, field := range fields {
				row[i] = parseCell(field)
			}
			return row, nil
		},
	}, nil
}

func newJSONStream(r io.Reader) (*StreamReader, error) {
	decoder := json.NewDecoder(r)
	var first json.RawMessage
	if err := decoder.Decode(&first); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("JSON stream has no records")
		}
		return nil, fmt.Errorf("parse JSON stream: %w", err)
	}
	headers, err := objectKeys(first)
	if err != nil {
		return nil, fmt.Errorf("parse JSON columns: %w", err)
	}
	pending := first
	return &StreamReader{
		headers: headers,
		nextRow: func() ([]any, error) {
			var raw json.RawMessage
			if pending != nil {
				raw, pending = pending, nil
			} else if err := decoder.Decode(&raw); err != nil {
				if errors.Is(err, io.EOF) {
					return nil, io.EOF
				}
				return nil, fmt.Errorf("parse JSON record: %w", err)
			}
			return jsonObjectRow(raw, headers)
		},
	}, nil
}
