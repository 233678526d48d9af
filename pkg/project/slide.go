package project

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Field is a named value on a slide. Values are strings, numbers or lists of strings.
type Field struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// Slide is the template content of one presentation slide.
type Slide struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Fields []Field `yaml:"fields"`
}

// MarshalJSON encodes the slide as a flat object, keeping field order.
func (s Slide) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeJSONPair(&buf, "title", s.Title); err != nil {
		return nil, err
	}
	for _, f := range s.Fields {
		buf.WriteByte(',')
		if err := writeJSONPair(&buf, f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONPair(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// Deck maps slide IDs to slides and keeps the slide order when encoded.
type Deck []Slide

// MarshalJSON encodes the deck as an object keyed by slide ID.
func (d Deck) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONPair(&buf, s.ID, s); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the deck as a mapping keyed by slide ID, keeping order.
func (d Deck) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range d {
		slide := &yaml.Node{Kind: yaml.MappingNode}
		if err := appendPair(slide, "title", s.Title); err != nil {
			return nil, err
		}
		for _, f := range s.Fields {
			if err := appendPair(slide, f.Name, f.Value); err != nil {
				return nil, err
			}
		}
		root.Content = append(root.Content, keyNode(s.ID), slide)
	}
	return root, nil
}

func appendPair(m *yaml.Node, key string, value any) error {
	v := &yaml.Node{}
	if err := v.Encode(value); err != nil {
		return err
	}
	m.Content = append(m.Content, keyNode(key), v)
	return nil
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}
