// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// readCSV parses comma-separated input. The first record names the
// columns; the csv package enforces a uniform field count, so ragged
// input fails with a line number before it can misalign a table.
func readCSV(r io.Reader) (*Set, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("CSV input has no header row")
	}
	set := &Set{Headers: records[0]}
	for _, fields := range records[1:] {
		row := make([]any, len(fields))
		for i, field := range fields {
			row[i] = parseCell(field)
		}
		set.Rows = append(set.Rows, row)
	}
	return set, nil
}
