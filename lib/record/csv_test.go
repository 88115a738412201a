// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "name, qty, price\nwidget, 3, 2.5\ngadget, 10, 0.99\n"
	set, err := Read(strings.NewReader(input), FormatCSV)
	if err != nil {
		t.Fatal(err)
	}
	wantHeaders := []string{"name", "qty", "price"}
	if !reflect.DeepEqual(set.Headers, wantHeaders) {
		t.Errorf("headers = %v, want %v", set.Headers, wantHeaders)
	}
	wantRows := [][]any{
		{"widget", int64(3), 2.5},
		{"gadget", int64(10), 0.99},
	}
	if !reflect.DeepEqual(set.Rows, wantRows) {
		t.Errorf("rows = %#v, want %#v", set.Rows, wantRows)
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := Read(strings.NewReader(""), FormatCSV); err == nil {
		t.Error("empty CSV input succeeded")
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	set, err := Read(strings.NewReader("a,b,c\n"), FormatCSV)
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Headers) != 3 || len(set.Rows) != 0 {
		t.Errorf("got %d headers, %d rows", len(set.Headers), len(set.Rows))
	}
}

func TestReadCSVRagged(t *testing.T) {
	if _, err := Read(strings.NewReader("a,b\n1,2,3\n"), FormatCSV); err == nil {
		t.Error("ragged CSV input succeeded")
	}
}

func TestReadCSVQuoted(t *testing.T) {
	set, err := Read(strings.NewReader("id,note\n1,\"a, b\"\n"), FormatCSV)
	if err != nil {
		t.Fatal(err)
	}
	if set.Rows[0][1] != "a, b" {
		t.Errorf("quoted cell = %#v", set.Rows[0][1])
	}
}
