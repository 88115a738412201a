// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// readYAML parses a document holding a sequence of mappings or a
// sequence of sequences. Decoding goes through yaml.Node rather than
// plain maps because mapping key order decides column order, and maps
// would shuffle it.
func readYAML(r io.Reader) (*Set, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty YAML input")
		}
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, errors.New("empty YAML document")
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, errors.New("YAML input must be a sequence of mappings or sequences")
	}
	if len(root.Content) == 0 {
		return nil, errors.New("YAML input has no records")
	}
	switch root.Content[0].Kind {
	case yaml.MappingNode:
		return setFromYAMLMappings(root.Content)
	case yaml.SequenceNode:
		return setFromYAMLSequences(root.Content)
	}
	return nil, errors.New("YAML records must be mappings or sequences")
}

// setFromYAMLMappings derives columns from the first mapping's key
// order, exactly like the JSON object reader.
func setFromYAMLMappings(nodes []*yaml.Node) (*Set, error) {
	var headers []string
	for i := 0; i+1 < len(nodes[0].Content); i += 2 {
		headers = append(headers, nodes[0].Content[i].Value)
	}
	set := &Set{Headers: headers}
	for i, node := range nodes {
		if node.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("YAML record %d is not a mapping", i)
		}
		values := make(map[string]*yaml.Node, len(node.Content)/2)
		for k := 0; k+1 < len(node.Content); k += 2 {
			values[node.Content[k].Value] = node.Content[k+1]
		}
		row := make([]any, len(headers))
		for j, key := range headers {
			valueNode, ok := values[key]
			if !ok {
				continue
			}
			var v any
			if err := valueNode.Decode(&v); err != nil {
				return nil, fmt.Errorf("YAML record %d field %q: %w", i, key, err)
			}
			row[j] = flattenNested(v)
		}
		set.Rows = append(set.Rows, row)
	}
	return set, nil
}

// setFromYAMLSequences treats the first sequence as the header row.
func setFromYAMLSequences(nodes []*yaml.Node) (*Set, error) {
	var headers []string
	if err := nodes[0].Decode(&headers); err != nil {
		return nil, fmt.Errorf("parse YAML header row: %w", err)
	}
	set := &Set{Headers: headers}
	for i, node := range nodes[1:] {
		var values []any
		if err := node.Decode(&values); err != nil {
			return nil, fmt.Errorf("parse YAML row %d: %w", i+1, err)
		}
		for j, v := range values {
			values[j] = flattenNested(v)
		}
		set.Rows = append(set.Rows, values)
	}
	return set, nil
}

// flattenNested turns nested structures into compact JSON text;
// scalars pass through for lib/table to format.
func flattenNested(v any) any {
	switch v.(type) {
	case map[string]any, []any:
		compact, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(compact)
	}
	return v
}
