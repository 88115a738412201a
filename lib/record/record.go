// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Format identifies an input format. The zero value means "detect".
type Format string

const (
	FormatAuto     Format = ""
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCBOR     Format = "cbor"
	FormatMarkdown Format = "markdown"
)

// ParseFormat converts a flag or configuration value into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "csv":
		return FormatCSV, nil
	case "json", "jsonc", "jsonl", "ndjson":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q (valid: auto, csv, json, yaml, cbor, markdown)", s)
}

// Set is the common shape every reader produces: one header row and
// zero or more data rows. Cells are strings, numbers, bools, or nil;
// lib/table formats each kind appropriately.
type Set struct {
	Headers []string
	Rows    [][]any
}

// Read decodes tabular data from r. With FormatAuto the input is
// buffered and its format sniffed from the content.
func Read(r io.Reader, format Format) (*Set, error) {
	if format == FormatAuto {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		format = detectContent(data)
		r = bytes.NewReader(data)
	}
	switch format {
	case FormatCSV:
		return readCSV(r)
	case FormatJSON:
		return readJSON(r)
	case FormatYAML:
		return readYAML(r)
	case FormatCBOR:
		return readCBOR(r)
	case FormatMarkdown:
		return readMarkdown(r)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// ReadFile decodes tabular data from a file, decompressing gzip,
// zstd, and lz4 transparently. With FormatAuto the format comes from
// the file extension, or from the content when the extension says
// nothing.
func ReadFile(path string, format Format) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	r, _, err := decompress(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if closer, ok := r.(io.Closer); ok {
		defer closer.Close()
	}
	if format == FormatAuto {
		format = Detect(path)
	}
	set, err := Read(r, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Detect maps a file path to a format by extension, looking through
// compression suffixes (.gz, .zst, .lz4). Unknown extensions return
// FormatAuto, which makes Read fall back to content sniffing.
func Detect(path string) Format {
	name := path
	for {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".gz", ".zst", ".zstd", ".lz4":
			name = strings.TrimSuffix(name, filepath.Ext(name))
			continue
		}
		break
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV
	case ".json", ".jsonc", ".jsonl", ".ndjson":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".cbor":
		return FormatCBOR
	case ".md", ".markdown":
		return FormatMarkdown
	}
	return FormatAuto
}

// detectContent guesses the format from the first bytes of buffered
// input. The ladder is deterministic: JSON, markdown, CBOR, YAML,
// then CSV as the fallback.
func detectContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return FormatCSV
	}
	switch trimmed[0] {
	case '[', '{':
		return FormatJSON
	case '|':
		return FormatMarkdown
	}
	head := trimmed
	if len(head) > 512 {
		head = head[:512]
	}
	if !utf8.Valid(head) {
		return FormatCBOR
	}
	line := head
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if bytes.HasPrefix(line, []byte("- ")) {
		return FormatYAML
	}
	if i := bytes.IndexByte(line, ':'); i >= 0 && !bytes.ContainsRune(line, ',') {
		return FormatYAML
	}
	return FormatCSV
}

// parseCell upgrades a text field to a number when it reads as one.
// Only digit-shaped fields are candidates ("nan" and "inf" stay
// words), and leading zeros stay strings: "007" is an identifier,
// not seven.
func parseCell(s string) any {
	if s == "" {
		return ""
	}
	switch s[0] {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-', '+', '.':
	default:
		return s
	}
	if len(s) > 1 && s[0] == '0' && s[1] != '.' {
		return s
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
