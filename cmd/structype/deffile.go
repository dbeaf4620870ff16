package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	structype "github.com/structype/structype"
	"github.com/structype/structype/internal/annot"
)

// Definition file format:
//
//	types:
//	  - name: UserStruct
//	    kind: struct            # struct | enum | union (default struct)
//	    annotations: []          # type-level; any entry is a fatal misuse
//	    members:
//	      - name: id
//	        meta: ["override_name=Primary ID", "order=1"]
//	      - name: username
//	        label: "name"
//	      - name: org
//
// label declares the single-string form, meta the pair form; entries in
// meta use the same k=v grammar as struct tags and keep their order.
type defFile struct {
	Types []typeDecl `yaml:"types"`
}

// Annotation values decode as raw yaml.Nodes rather than strings: the yaml
// decoder would coerce scalars like 42 into a string field, and a non-string
// literal must stay visible so it can be rejected.
type typeDecl struct {
	Name        string       `yaml:"name"`
	Kind        string       `yaml:"kind"`
	Annotations []yaml.Node  `yaml:"annotations"`
	Members     []memberDecl `yaml:"members"`
}

type memberDecl struct {
	Name  string      `yaml:"name"`
	Label yaml.Node   `yaml:"label"`
	Meta  []yaml.Node `yaml:"meta"`
}

// loadDefs decodes a definition document into TypeDefs. Decode failures and
// unknown kinds are definition errors; annotation-shape rules are left to
// DescribeTypeDef so the CLI reports them identically to the library.
func loadDefs(data []byte) ([]structype.TypeDef, error) {
	var f defFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", structype.CodeBadDefinition, err)
	}
	if len(f.Types) == 0 {
		return nil, fmt.Errorf("%s: no types declared", structype.CodeBadDefinition)
	}
	defs := make([]structype.TypeDef, 0, len(f.Types))
	for _, t := range f.Types {
		def, err := convertType(t)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func convertType(t typeDecl) (structype.TypeDef, error) {
	kind, err := parseKindName(t.Kind)
	if err != nil {
		return structype.TypeDef{}, fmt.Errorf("type %q: %w", t.Name, err)
	}
	def := structype.TypeDef{Name: t.Name, Kind: kind}
	for i := range t.Annotations {
		s, err := scalarString(&t.Annotations[i])
		if err != nil {
			return structype.TypeDef{}, fmt.Errorf("type %q: %w", t.Name, err)
		}
		def.TypeAnnotations = append(def.TypeAnnotations, structype.Label(s))
	}
	for _, m := range t.Members {
		member := structype.Member{Name: m.Name}
		if !m.Label.IsZero() {
			s, err := scalarString(&m.Label)
			if err != nil {
				return structype.TypeDef{}, fmt.Errorf("type %q member %q: %w", t.Name, m.Name, err)
			}
			member.Annotations = append(member.Annotations, structype.Label(s))
		}
		if m.Meta != nil {
			ann, err := convertMeta(m.Meta)
			if err != nil {
				return structype.TypeDef{}, fmt.Errorf("type %q member %q: %w", t.Name, m.Name, err)
			}
			member.Annotations = append(member.Annotations, ann)
		}
		def.Members = append(def.Members, member)
	}
	return def, nil
}

// convertMeta parses each entry with the tag grammar and concatenates the
// pairs, preserving entry order.
func convertMeta(entries []yaml.Node) (structype.Annotation, error) {
	var pairs []structype.Pair
	for i := range entries {
		e, err := scalarString(&entries[i])
		if err != nil {
			return structype.Annotation{}, err
		}
		ps, err := annot.ParsePairs(e)
		if err != nil {
			return structype.Annotation{}, fmt.Errorf("%s: %q: %w", structype.CodeMalformedValue, e, err)
		}
		for _, p := range ps {
			pairs = append(pairs, structype.Pair{Key: p.Key, Value: p.Value})
		}
	}
	return structype.Pairs(pairs...), nil
}

// scalarString accepts only plain string scalars. Ints, bools, nested
// sequences and mappings are all non-string literals.
func scalarString(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Tag != "!!str" {
		return "", fmt.Errorf("%s: only string values are supported, got %s", structype.CodeMalformedValue, n.Tag)
	}
	return n.Value, nil
}

func parseKindName(s string) (structype.Kind, error) {
	switch s {
	case "", "struct":
		return structype.KindStruct, nil
	case "enum":
		return structype.KindEnum, nil
	case "union":
		return structype.KindUnion, nil
	}
	return 0, fmt.Errorf("%s: unknown kind %q", structype.CodeBadDefinition, s)
}
