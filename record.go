package structype

import (
	"bytes"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Meta is the metadata object of one member under the list schemas: the
// annotation's key/value pairs in declaration order. A nil Meta serializes
// as an empty object.
type Meta []Pair

// Get returns the value for key and whether it is present.
func (m Meta) Get(key string) (string, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// MarshalJSON writes the pairs as a JSON object in declaration order.
// Encoding the object by hand keeps the order a plain map would lose.
func (m Meta) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('{')
	for i, p := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := j.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		v, err := j.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// MarshalYAML renders the pairs as a mapping node in declaration order.
func (m Meta) MarshalYAML() (any, error) {
	return metaMappingNode(m), nil
}

func metaMappingNode(m Meta) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if len(m) == 0 {
		node.Style = yaml.FlowStyle
	}
	for _, p := range m {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Value},
		)
	}
	return node
}

// FlatRecord is the flat-map schema: member name -> override string, or the
// member's own name when no annotation was present. Serialization follows
// the encoder's map-key ordering (sorted), which is deterministic but not a
// declaration-order guarantee.
type FlatRecord map[string]string

// MemberMeta is one entry of the metadata-list schema. It serializes as a
// single-entry object {member-name: meta}.
type MemberMeta struct {
	Name string
	Meta Meta
}

// MarshalJSON emits the single-entry object form.
func (mm MemberMeta) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	k, err := j.Marshal(mm.Name)
	if err != nil {
		return nil, err
	}
	v, err := mm.Meta.MarshalJSON()
	if err != nil {
		return nil, err
	}
	b.WriteByte('{')
	b.Write(k)
	b.WriteByte(':')
	b.Write(v)
	b.WriteByte('}')
	return b.Bytes(), nil
}

// MarshalYAML emits the single-entry mapping form.
func (mm MemberMeta) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: mm.Name},
			metaMappingNode(mm.Meta),
		},
	}, nil
}

// MetaList is the metadata-list schema: one entry per member in declaration
// order.
type MetaList []MemberMeta

// FieldRecord is one entry of the structured-list schema.
type FieldRecord struct {
	FieldName string `json:"field_name" yaml:"field_name"`
	Meta      Meta   `json:"meta" yaml:"meta"`
}

// StructuredList is the structured-list schema: one record per member in
// declaration order.
type StructuredList []FieldRecord
