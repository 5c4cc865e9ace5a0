package almanac

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"rangefold/internal/rangemap"
)

// Almanac is the parsed input of a run.
type Almanac struct {
	Version string        `yaml:"version"`
	Seeds   []rangemap.ID `yaml:"seeds,flow"`
	Stages  []Section     `yaml:"stages"`
}

// Section is one stage of the chain, mapping category From to category To.
type Section struct {
	From  string   `yaml:"from"`
	To    string   `yaml:"to"`
	Rules []Triple `yaml:"rules"`
}

// Name returns the "<from>-to-<to>" name of the section.
func (s Section) Name() string {
	return s.From + "-to-" + s.To
}

// Triple is one raw rule: Len values starting at Src map onto Len values
// starting at Dest.
type Triple struct {
	Dest rangemap.ID
	Src  rangemap.ID
	Len  rangemap.ID
}

// Rule converts the triple into a rangemap rule.
func (t Triple) Rule() (rangemap.Rule, error) {
	return rangemap.FromTriple(t.Dest, t.Src, t.Len)
}

func (t Triple) String() string {
	return fmt.Sprintf("%d %d %d", t.Dest, t.Src, t.Len)
}

// UnmarshalYAML accepts either a [dest, src, len] sequence or a mapping with
// dest, src and len keys.
func (t *Triple) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var vals []rangemap.ID

		err := node.Decode(&vals)
		if err != nil {
			return err
		}

		if len(vals) != 3 {
			return fmt.Errorf("line %d: expected 3 values (destination, source, length), got %d", node.Line, len(vals))
		}

		*t = Triple{Dest: vals[0], Src: vals[1], Len: vals[2]}

		return nil

	case yaml.MappingNode:
		var raw struct {
			Dest *rangemap.ID `yaml:"dest"`
			Src  *rangemap.ID `yaml:"src"`
			Len  *rangemap.ID `yaml:"len"`
		}

		err := node.Decode(&raw)
		if err != nil {
			return err
		}

		if raw.Dest == nil || raw.Src == nil || raw.Len == nil {
			return fmt.Errorf("line %d: rule needs dest, src and len", node.Line)
		}

		*t = Triple{Dest: *raw.Dest, Src: *raw.Src, Len: *raw.Len}

		return nil

	default:
		return fmt.Errorf("line %d: expected rule sequence or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes the triple as a flow sequence.
func (t Triple) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []rangemap.ID{t.Dest, t.Src, t.Len} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatInt(v, 10),
		})
	}

	return node, nil
}
