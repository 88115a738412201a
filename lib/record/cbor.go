// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// cborDecMode accepts standard CBOR. DefaultMapType makes any-typed
// targets decode to map[string]any instead of map[any]any, which is
// what the row projection below works with.
var cborDecMode cbor.DecMode

func init() {
	var err error
	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("record: CBOR decoder initialization failed: " + err.Error())
	}
}

// readCBOR parses a stream of data items: arrays (the first names the
// columns) or string-keyed maps. A single top-level array of records
// also works. Map records take their column order from the sorted
// keys of the first map: deterministic encoders sort map keys, so
// this is document order for anything a canonical encoder produced.
func readCBOR(r io.Reader) (*Set, error) {
	decoder := cborDecMode.NewDecoder(r)
	var items []any
	for {
		var item any
		if err := decoder.Decode(&item); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parse CBOR: %w", err)
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, errors.New("CBOR input has no records")
	}

	// A single wrapped array of records: unwrap it.
	if len(items) == 1 {
		if inner, ok := items[0].([]any); ok && len(inner) > 0 {
			switch inner[0].(type) {
			case []any, map[string]any:
				items = inner
			}
		}
	}

	switch items[0].(type) {
	case []any:
		return setFromCBORArrays(items)
	case map[string]any:
		return setFromCBORMaps(items)
	}
	return nil, fmt.Errorf("CBOR records must be arrays or maps, got %T", items[0])
}

func setFromCBORArrays(items []any) (*Set, error) {
	first, ok := items[0].([]any)
	if !ok {
		return nil, fmt.Errorf("CBOR record 0 is %T, want array", items[0])
	}
	headers := make([]string, len(first))
	for i, v := range first {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("CBOR header cell %d is %T, want string", i, v)
		}
		headers[i] = s
	}
	set := &Set{Headers: headers}
	for i, item := range items[1:] {
		values, ok := item.([]any)
		if !ok {
			return nil, fmt.Errorf("CBOR record %d is %T, want array", i+1, item)
		}
		for j, v := range values {
			values[j] = flattenNested(v)
		}
		set.Rows = append(set.Rows, values)
	}
	return set, nil
}

func setFromCBORMaps(items []any) (*Set, error) {
	first, ok := items[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("CBOR record 0 is %T, want map", items[0])
	}
	headers := make([]string, 0, len(first))
	for key := range first {
		headers = append(headers, key)
	}
	sort.Strings(headers)
	set := &Set{Headers: headers}
	for i, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("CBOR record %d is %T, want map", i, item)
		}
		row := make([]any, len(headers))
		for j, key := range headers {
			row[j] = flattenNested(object[key])
		}
		set.Rows = append(set.Rows, row)
	}
	return set, nil
}
