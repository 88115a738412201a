// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

// cborItems encodes each value as one CBOR data item and concatenates
// them, the stream shape readCBOR consumes.
func cborItems(t *testing.T, values ...any) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	for _, v := range values {
		data, err := cbor.Marshal(v)
		if err != nil {
			t.Fatalf("marshal CBOR fixture: %v", err)
		}
		buf.Write(data)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestReadCBORMaps(t *testing.T) {
	input := cborItems(t,
		map[string]any{"b": 1, "a": "x"},
		map[string]any{"a": "y", "b": 2},
	)
	set, err := Read(input, FormatCBOR)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(set.Headers, []string{"a", "b"}) {
		t.Errorf("headers = %v, want [a b]", set.Headers)
	}
	// Positive CBOR integers decode as uint64.
	wantRows := [][]any{
		{"x", uint64(1)},
		{"y", uint64(2)},
	}
	if !reflect.DeepEqual(set.Rows, wantRows) {
		t.Errorf("rows = %#v, want %#v", set.Rows, wantRows)
	}
}

func TestReadCBORArrays(t *testing.T) {
	input := cborItems(t,
		[]any{"name", "n"},
		[]any{"amy", 1},
		[]any{"bob", -2},
	)
	set, err := Read(input, FormatCBOR)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(set.Headers, []string{"name", "n"}) {
		t.Errorf("headers = %v", set.Headers)
	}
	if set.Rows[0][1] != uint64(1) || set.Rows[1][1] != int64(-2) {
		t.Errorf("rows = %#v", set.Rows)
	}
}

func TestReadCBORWrappedArray(t *testing.T) {
	input := cborItems(t, []any{
		[]any{"h"},
		[]any{"v"},
	})
	set, err := Read(input, FormatCBOR)
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Headers) != 1 || set.Headers[0] != "h" || len(set.Rows) != 1 {
		t.Errorf("set = %#v", set)
	}
}

func TestReadCBORNested(t *testing.T) {
	input := cborItems(t, map[string]any{"name": "amy", "tags": []any{"x", "y"}})
	set, err := Read(input, FormatCBOR)
	if err != nil {
		t.Fatal(err)
	}
	if set.Rows[0][1] != `["x","y"]` {
		t.Errorf("nested cell = %#v", set.Rows[0][1])
	}
}

func TestReadCBORErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if _, err := Read(bytes.NewReader(nil), FormatCBOR); err == nil {
			t.Error("Read succeeded")
		}
	})
	t.Run("scalar record", func(t *testing.T) {
		if _, err := Read(cborItems(t, "just text"), FormatCBOR); err == nil {
			t.Error("Read succeeded")
		}
	})
	t.Run("non-string header", func(t *testing.T) {
		input := cborItems(t, []any{[]any{1, 2}})
		if _, err := Read(input, FormatCBOR); err == nil {
			t.Error("Read succeeded")
		}
	})
}
