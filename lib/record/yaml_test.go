// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadYAMLMappings(t *testing.T) {
	input := `
- second: 1
  first: amy
- first: bob
  second: 2
`
	set, err := Read(strings.NewReader(input), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	// Column order comes from the first mapping's document order.
	if !reflect.DeepEqual(set.Headers, []string{"second", "first"}) {
		t.Errorf("headers = %v, want [second first]", set.Headers)
	}
	wantRows := [][]any{
		{1, "amy"},
		{2, "bob"},
	}
	if !reflect.DeepEqual(set.Rows, wantRows) {
		t.Errorf("rows = %#v, want %#v", set.Rows, wantRows)
	}
}

func TestReadYAMLMissingKey(t *testing.T) {
	input := "- a: 1\n  b: 2\n- a: 3\n"
	set, err := Read(strings.NewReader(input), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if set.Rows[1][1] != nil {
		t.Errorf("missing key cell = %#v, want nil", set.Rows[1][1])
	}
}

func TestReadYAMLSequences(t *testing.T) {
	input := "- [name, n]\n- [amy, 1]\n- [bob, 2.5]\n"
	set, err := Read(strings.NewReader(input), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(set.Headers, []string{"name", "n"}) {
		t.Errorf("headers = %v", set.Headers)
	}
	if set.Rows[0][1] != 1 || set.Rows[1][1] != 2.5 {
		t.Errorf("rows = %#v", set.Rows)
	}
}

func TestReadYAMLNested(t *testing.T) {
	input := "- name: amy\n  tags: [x, y]\n"
	set, err := Read(strings.NewReader(input), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if set.Rows[0][1] != `["x","y"]` {
		t.Errorf("nested cell = %#v", set.Rows[0][1])
	}
}

func TestReadYAMLErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"scalar", "just a string\n"},
		{"mapping root", "a: 1\n"},
		{"empty sequence", "[]\n"},
		{"mixed records", "- a: 1\n- plain\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tc.input), FormatYAML); err == nil {
				t.Error("Read succeeded")
			}
		})
	}
}
