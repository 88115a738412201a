// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bureau-foundation/tabular/lib/config"
	"github.com/bureau-foundation/tabular/lib/record"
	"github.com/bureau-foundation/tabular/lib/table"
)

func TestParseWidthFlag_Auto(t *testing.T) {
	for _, value := range []string{"0", "auto"} {
		spec, err := parseWidthFlag(value)
		if err != nil {
			t.Fatalf("parseWidthFlag(%q): %v", value, err)
		}
		if !spec.IsAuto() {
			t.Errorf("parseWidthFlag(%q): expected automatic widths", value)
		}
	}
}

func TestParseWidthFlag(t *testing.T) {
	tests := []struct {
		value string
		want  table.WidthSpec
	}{
		{"12", table.FixedWidth(12)},
		{"8,20,4", table.ColumnWidths(8, 20, 4)},
		{" 8 , 20 ", table.ColumnWidths(8, 20)},
	}
	for _, tt := range tests {
		spec, err := parseWidthFlag(tt.value)
		if err != nil {
			t.Fatalf("parseWidthFlag(%q): %v", tt.value, err)
		}
		if !reflect.DeepEqual(spec, tt.want) {
			t.Errorf("parseWidthFlag(%q) = %+v, want %+v", tt.value, spec, tt.want)
		}
	}
}

func TestParseWidthFlag_Invalid(t *testing.T) {
	for _, value := range []string{"", "abc", "12.5", "8,x", "8,,4"} {
		if _, err := parseWidthFlag(value); err == nil {
			t.Errorf("parseWidthFlag(%q): expected error", value)
		}
	}
}

func TestMaxWidthLimit(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"0", 0},
		{"72", 72},
	}
	for _, tt := range tests {
		limit, err := maxWidthLimit(tt.value)
		if err != nil {
			t.Fatalf("maxWidthLimit(%q): %v", tt.value, err)
		}
		if limit != tt.want {
			t.Errorf("maxWidthLimit(%q) = %d, want %d", tt.value, limit, tt.want)
		}
	}
}

func TestMaxWidthLimit_Invalid(t *testing.T) {
	for _, value := range []string{"", "abc", "-1", "12.5"} {
		if _, err := maxWidthLimit(value); err == nil {
			t.Errorf("maxWidthLimit(%q): expected error", value)
		}
	}
}

// "auto" degrades to no limit when stdout is not a terminal, which is
// the usual situation under go test. Either way it must not error.
func TestMaxWidthLimit_AutoNeverErrors(t *testing.T) {
	limit, err := maxWidthLimit("auto")
	if err != nil {
		t.Fatalf("maxWidthLimit(auto): %v", err)
	}
	if limit < 0 {
		t.Errorf("maxWidthLimit(auto) = %d, want >= 0", limit)
	}
}

func TestTableOptions_ConfigDefaults(t *testing.T) {
	opts, err := tableOptions(config.Default(), "", "", "", 0)
	if err != nil {
		t.Fatalf("tableOptions: %v", err)
	}
	if opts.Style != "round" {
		t.Errorf("Style = %q, want round", opts.Style)
	}
	if opts.Precision != 5 {
		t.Errorf("Precision = %d, want 5", opts.Precision)
	}
	if opts.Align != table.AlignLeft {
		t.Errorf("Align = %q, want left", opts.Align)
	}
	if !opts.Width.IsAuto() {
		t.Errorf("Width = %+v, want automatic", opts.Width)
	}
}

func TestTableOptions_FlagsOverrideConfig(t *testing.T) {
	cfg := &config.Config{
		Style:     "grid",
		Precision: 3,
		Align:     table.AlignCenter,
		Width:     14,
		Color:     config.ColorNever,
	}
	opts, err := tableOptions(cfg, "heavy", "9", "right", 2)
	if err != nil {
		t.Fatalf("tableOptions: %v", err)
	}
	if opts.Style != "heavy" {
		t.Errorf("Style = %q, want heavy", opts.Style)
	}
	if opts.Precision != 2 {
		t.Errorf("Precision = %d, want 2", opts.Precision)
	}
	if opts.Align != table.AlignRight {
		t.Errorf("Align = %q, want right", opts.Align)
	}
	if want := table.FixedWidth(9); !reflect.DeepEqual(opts.Width, want) {
		t.Errorf("Width = %+v, want %+v", opts.Width, want)
	}
}

// An unset width flag falls back to the config file's width, not to
// automatic sizing.
func TestTableOptions_ConfigWidthKept(t *testing.T) {
	cfg := config.Default()
	cfg.Width = 14
	opts, err := tableOptions(cfg, "", "", "", 0)
	if err != nil {
		t.Fatalf("tableOptions: %v", err)
	}
	if want := table.FixedWidth(14); !reflect.DeepEqual(opts.Width, want) {
		t.Errorf("Width = %+v, want %+v", opts.Width, want)
	}
}

func TestTableOptions_BadAlign(t *testing.T) {
	if _, err := tableOptions(config.Default(), "", "", "sideways", 0); err == nil {
		t.Fatal("expected error for unknown alignment")
	}
}

func TestTableOptions_BadWidth(t *testing.T) {
	if _, err := tableOptions(config.Default(), "", "wide", "", 0); err == nil {
		t.Fatal("expected error for unparseable width")
	}
}

func TestColorMode(t *testing.T) {
	cfg := config.Default()

	mode, err := colorMode(cfg, "")
	if err != nil {
		t.Fatalf("colorMode: %v", err)
	}
	if mode != config.ColorAuto {
		t.Errorf("mode = %q, want auto from config", mode)
	}

	cfg.Color = config.ColorNever
	mode, err = colorMode(cfg, "")
	if err != nil {
		t.Fatalf("colorMode: %v", err)
	}
	if mode != config.ColorNever {
		t.Errorf("mode = %q, want never from config", mode)
	}

	mode, err = colorMode(cfg, "always")
	if err != nil {
		t.Fatalf("colorMode: %v", err)
	}
	if mode != config.ColorAlways {
		t.Errorf("mode = %q, want always from flag", mode)
	}

	if _, err := colorMode(cfg, "sometimes"); err == nil {
		t.Fatal("expected error for unknown color mode")
	}
}

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("name,count\nalpha,12\nbeta,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	set, source, err := readInput([]string{path}, record.FormatAuto)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if !reflect.DeepEqual(set.Headers, []string{"name", "count"}) {
		t.Errorf("headers = %v", set.Headers)
	}
	if len(set.Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(set.Rows))
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	if _, _, err := readInput([]string{filepath.Join(t.TempDir(), "absent.csv")}, record.FormatAuto); err == nil {
		t.Fatal("expected error for missing file")
	}
}
