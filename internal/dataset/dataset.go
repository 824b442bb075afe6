// Package dataset loads and dumps the structured translation dataset
// exchanged with the translation platform: a YAML document whose single
// top-level group key maps to an ordered key→value translation mapping.
package dataset

import (
	"bytes"
	"fmt"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// DefaultGroup is the conventional top-level grouping key used by the
// translation platform export.
const DefaultGroup = "weblate"

// Table is an ordered mapping from trimmed translation key to value.
// Iteration follows insertion order, which mirrors document order in the
// source YAML.
type Table struct {
	entries *orderedmap.OrderedMap[string, string]
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{entries: orderedmap.New[string, string]()}
}

// Set stores or replaces the value for a key, preserving first-insertion
// position for existing keys.
func (t *Table) Set(key, value string) {
	t.entries.Set(key, value)
}

// Get looks up the value for a key.
func (t *Table) Get(key string) (string, bool) {
	return t.entries.Get(key)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return t.entries.Len()
}

// Each calls fn for every entry in order.
func (t *Table) Each(fn func(key, value string)) {
	for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Parse decodes a dataset document and extracts the mapping nested under the
// given group key. A document without that top-level key is malformed; no
// partial result is returned.
func Parse(data []byte, group string) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("dataset is empty, expected top-level %q mapping", group)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("dataset root is not a mapping, expected top-level %q mapping", group)
	}

	var inner *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == group {
			inner = root.Content[i+1]
			break
		}
	}
	if inner == nil {
		return nil, fmt.Errorf("dataset missing top-level %q mapping", group)
	}
	if inner.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("dataset %q entry is not a mapping", group)
	}

	table := NewTable()
	for i := 0; i+1 < len(inner.Content); i += 2 {
		keyNode, valueNode := inner.Content[i], inner.Content[i+1]
		if valueNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("dataset entry %q is not a scalar value", keyNode.Value)
		}
		table.Set(keyNode.Value, valueNode.Value)
	}
	return table, nil
}

// Load reads and parses a dataset file.
func Load(path, group string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data, group)
}

// Marshal serializes the table under the given group key, preserving entry
// order. Values are always emitted as strings.
func Marshal(table *Table, group string) ([]byte, error) {
	inner := &yaml.Node{Kind: yaml.MappingNode}
	table.Each(func(key, value string) {
		inner.Content = append(inner.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	})

	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: group},
			inner,
		},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close dataset encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// Dump writes the table to a file under the given group key.
func Dump(path string, table *Table, group string) error {
	data, err := Marshal(table, group)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}
