// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
)

// readJSON parses an array of objects, an array of arrays, or a
// stream of newline-delimited objects. Input passes through the JSONC
// translator first, so comments and trailing commas are fine.
func readJSON(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read JSON input: %w", err)
	}
	data = bytes.TrimSpace(jsonc.ToJSON(data))
	if len(data) == 0 {
		return nil, errors.New("empty JSON input")
	}
	switch data[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
		return setFromJSONItems(items)
	case '{':
		// Newline-delimited objects (a single object is a
		// one-row stream).
		decoder := json.NewDecoder(bytes.NewReader(data))
		var items []json.RawMessage
		for {
			var raw json.RawMessage
			if err := decoder.Decode(&raw); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, fmt.Errorf("parse JSON stream: %w", err)
			}
			items = append(items, raw)
		}
		return setFromJSONItems(items)
	}
	return nil, errors.New("JSON input must be an array or a stream of objects")
}

func setFromJSONItems(items []json.RawMessage) (*Set, error) {
	if len(items) == 0 {
		return nil, errors.New("JSON input has no records")
	}
	first := bytes.TrimSpace(items[0])
	if len(first) == 0 {
		return nil, errors.New("JSON input starts with an empty record")
	}
	switch first[0] {
	case '[':
		return setFromJSONArrays(items)
	case '{':
		return setFromJSONObjects(items)
	}
	return nil, fmt.Errorf("JSON records must be arrays or objects, got %s", first)
}

// setFromJSONArrays treats the first array as the header row and the
// rest as data.
func setFromJSONArrays(items []json.RawMessage) (*Set, error) {
	var headers []string
	if err := json.Unmarshal(items[0], &headers); err != nil {
		return nil, fmt.Errorf("parse JSON header row: %w", err)
	}
	set := &Set{Headers: headers}
	for i, item := range items[1:] {
		values, err := decodeJSONValues(item)
		if err != nil {
			return nil, fmt.Errorf("parse JSON row %d: %w", i+1, err)
		}
		set.Rows = append(set.Rows, values)
	}
	return set, nil
}

// setFromJSONObjects derives the columns from the first object's key
// order and projects every object onto them. Keys absent from the
// first object are ignored; keys absent from a later object yield
// empty cells.
func setFromJSONObjects(items []json.RawMessage) (*Set, error) {
	headers, err := objectKeys(items[0])
	if err != nil {
		return nil, fmt.Errorf("parse JSON columns: %w", err)
	}
	set := &Set{Headers: headers}
	for i, item := range items {
		row, err := jsonObjectRow(item, headers)
		if err != nil {
			return nil, fmt.Errorf("parse JSON record %d: %w", i, err)
		}
		set.Rows = append(set.Rows, row)
	}
	return set, nil
}

// jsonObjectRow projects one object onto the header columns; keys the
// headers don't name are dropped, missing keys yield empty cells.
func jsonObjectRow(item json.RawMessage, headers []string) ([]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(item))
	decoder.UseNumber()
	var object map[string]any
	if err := decoder.Decode(&object); err != nil {
		return nil, err
	}
	row := make([]any, len(headers))
	for j, key := range headers {
		if value, ok := object[key]; ok {
			row[j] = jsonValue(value)
		}
	}
	return row, nil
}

func decodeJSONValues(item json.RawMessage) ([]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(item))
	decoder.UseNumber()
	var values []any
	if err := decoder.Decode(&values); err != nil {
		return nil, err
	}
	for i, v := range values {
		values[i] = jsonValue(v)
	}
	return values, nil
}

// jsonValue narrows decoded JSON to cell types: numbers become int64
// when they are integral, float64 otherwise, and nested structures
// re-serialize to compact JSON text.
func jsonValue(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case string, bool, nil:
		return v
	default:
		compact, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(compact)
	}
}

// objectKeys returns an object's keys in document order, which
// encoding/json's map decoding would lose.
func objectKeys(object json.RawMessage) ([]string, error) {
	decoder := json.NewDecoder(bytes.NewReader(object))
	tok, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("record is not an object")
	}
	var keys []string
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in object", tok)
		}
		keys = append(keys, key)
		if err := skipJSONValue(decoder); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// skipJSONValue consumes one JSON value, balancing any nesting.
func skipJSONValue(decoder *json.Decoder) error {
	tok, err := decoder.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '[' && delim != '{') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := decoder.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			}
		}
	}
	return nil
}
