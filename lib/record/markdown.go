// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// The parser configuration never changes and goldmark parsers are
// safe to share; parsing creates per-call state via Parse(reader).
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownParserInstance
}

// readMarkdown extracts the first GFM pipe table from a markdown
// document. Cell text is the flattened inline content; per-column
// alignment markers are ignored; output alignment is the renderer's
// concern. Numeric-looking cells become numbers, as in CSV.
func readMarkdown(r io.Reader) (*Set, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown input: %w", err)
	}
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	var tableNode ast.Node
	err = ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && node.Kind() == extast.KindTable {
			tableNode = node
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}
	if tableNode == nil {
		return nil, errors.New("no table found in markdown input")
	}

	set := &Set{}
	for child := tableNode.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.Kind() {
		case extast.KindTableHeader:
			set.Headers = collectTableCells(child, source)
		case extast.KindTableRow:
			cells := collectTableCells(child, source)
			row := make([]any, len(cells))
			for i, cell := range cells {
				row[i] = parseCell(cell)
			}
			set.Rows = append(set.Rows, row)
		}
	}
	if len(set.Headers) == 0 {
		return nil, errors.New("markdown table has no header row")
	}
	return set, nil
}

// collectTableCells gathers the plain text of each cell in a header
// or body row.
func collectTableCells(row ast.Node, source []byte) []string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if cell.Kind() == extast.KindTableCell {
			cells = append(cells, inlineText(cell, source))
		}
	}
	return cells
}

// inlineText flattens a node's inline content to plain text, dropping
// emphasis and link structure but keeping their text.
func inlineText(node ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(source))
		case *ast.String:
			b.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
