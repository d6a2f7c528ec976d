package definition

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// --- Triple YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Triple.
// Accepts either a mapping with dest, source and length keys or a
// three-element sequence in almanac order.
func (t *Triple) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		vals, err := decodeUints(node, 3)
		if err != nil {
			return fmt.Errorf("range: %w", err)
		}

		*t = Triple{Dest: vals[0], Source: vals[1], Length: vals[2]}

		return nil

	case yaml.MappingNode:
		var raw struct {
			Dest   uint64 `yaml:"dest"`
			Source uint64 `yaml:"source"`
			Length uint64 `yaml:"length"`
		}

		if err := node.Decode(&raw); err != nil {
			return err
		}

		*t = Triple(raw)

		return nil

	default:
		return fmt.Errorf("line %d: expected range mapping or [dest, source, length], got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for Triple.
// Outputs a flow sequence [dest, source, length].
func (t Triple) MarshalYAML() (any, error) {
	return flowUints(t.Dest, t.Source, t.Length), nil
}

// --- SeedRange YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for SeedRange.
// Accepts either a mapping with start and length keys or a two-element
// sequence.
func (s *SeedRange) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		vals, err := decodeUints(node, 2)
		if err != nil {
			return fmt.Errorf("seed range: %w", err)
		}

		*s = SeedRange{Start: vals[0], Length: vals[1]}

		return nil

	case yaml.MappingNode:
		var raw struct {
			Start  uint64 `yaml:"start"`
			Length uint64 `yaml:"length"`
		}

		if err := node.Decode(&raw); err != nil {
			return err
		}

		*s = SeedRange(raw)

		return nil

	default:
		return fmt.Errorf("line %d: expected seed range mapping or [start, length], got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for SeedRange.
// Outputs a flow mapping {start, length}.
func (s SeedRange) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "start"}, uintNode(s.Start),
		&yaml.Node{Kind: yaml.ScalarNode, Value: "length"}, uintNode(s.Length),
	)

	return node, nil
}

// --- helpers ---

func decodeUints(node *yaml.Node, n int) ([]uint64, error) {
	if len(node.Content) != n {
		return nil, fmt.Errorf("line %d: expected %d numbers, got %d", node.Line, n, len(node.Content))
	}

	var vals []uint64
	if err := node.Decode(&vals); err != nil {
		return nil, err
	}

	return vals, nil
}

func uintNode(v uint64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(v, 10)}
}

func flowUints(vals ...uint64) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range vals {
		node.Content = append(node.Content, uintNode(v))
	}

	return node
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
