package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry pairs a key with the Go expression stored under it.
type Entry struct {
	Key  string
	Expr string
	Line int // line in the declaration file, 0 when unknown
}

// Entries is an ordered key = expression list. It decodes from a YAML
// mapping, keeping the written order and any repeated keys so validation
// can report them, or from a sequence of single-pair mappings.
type Entries []Entry

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Entries) UnmarshalYAML(node *yaml.Node) error {
	var out Entries

	switch node.Kind {
	case yaml.MappingNode:
		pairs, err := decodePairs(node)
		if err != nil {
			return err
		}
		out = pairs
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
				return fmt.Errorf("line %d: entry must be a single key: value pair", item.Line)
			}
			pairs, err := decodePairs(item)
			if err != nil {
				return err
			}
			out = append(out, pairs...)
		}
	default:
		return fmt.Errorf("line %d: entries must be a mapping of key: expression", node.Line)
	}

	*e = out
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Entries) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range e {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Expr},
		)
	}
	return node, nil
}

func decodePairs(node *yaml.Node) (Entries, error) {
	out := make(Entries, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: entry key must be a key name", key.Line)
		}
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: value of %s must be a Go expression", value.Line, key.Value)
		}
		out = append(out, Entry{Key: key.Value, Expr: value.Value, Line: key.Line})
	}
	return out, nil
}
