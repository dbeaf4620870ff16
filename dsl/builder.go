package dsl

import (
	"fmt"

	structype "github.com/structype/structype"
	"github.com/structype/structype/i18n"
)

// KVPair is one declared key/value entry of a pair-form annotation.
// Value is typed loosely so that invalid literals are representable and can
// be rejected with the proper failure code.
type KVPair struct {
	Key      string
	Value    any
	hasValue bool
}

// KV declares a key with a value.
func KV(key string, value any) KVPair { return KVPair{Key: key, Value: value, hasValue: true} }

// Key declares a bare key with no value. Building a definition containing
// one always fails with malformed_value.
func Key(key string) KVPair { return KVPair{Key: key} }

// Ann is an unvalidated annotation declaration.
type Ann struct {
	label  any
	pairs  []KVPair
	single bool
}

// Label declares the single-string annotation form.
func Label(value any) Ann { return Ann{label: value, single: true} }

// Pairs declares the ordered pair-form annotation.
func Pairs(pairs ...KVPair) Ann { return Ann{pairs: append([]KVPair(nil), pairs...)} }

type memberDecl struct {
	name string
	anns []Ann
}

// TypeBuilder accumulates a type definition member by member.
type TypeBuilder struct {
	name     string
	kind     structype.Kind
	members  []memberDecl
	typeAnns []Ann
}

// Struct creates a builder for a struct definition.
func Struct(name string) *TypeBuilder {
	return &TypeBuilder{name: name, kind: structype.KindStruct}
}

// Enum creates a builder for an enum definition; declare its variants with
// Variant.
func Enum(name string) *TypeBuilder {
	return &TypeBuilder{name: name, kind: structype.KindEnum}
}

// Union creates a builder for a union definition.
func Union(name string) *TypeBuilder {
	return &TypeBuilder{name: name, kind: structype.KindUnion}
}

// Annotate attaches annotations to the type itself. Any such annotation
// fails Build with misplaced_annotation; the method exists so the misuse is
// declarable and testable, exactly as the attribute position is in source.
func (b *TypeBuilder) Annotate(anns ...Ann) *TypeBuilder {
	b.typeAnns = append(b.typeAnns, anns...)
	return b
}

// Field declares a named member with zero or more annotations.
func (b *TypeBuilder) Field(name string, anns ...Ann) *TypeBuilder {
	b.members = append(b.members, memberDecl{name: name, anns: anns})
	return b
}

// Variant declares an enum variant. Variants and fields are both members;
// the separate name keeps enum declarations readable.
func (b *TypeBuilder) Variant(name string, anns ...Ann) *TypeBuilder {
	return b.Field(name, anns...)
}

// TypeDef converts the declaration into a structype.TypeDef, rejecting
// invalid literals. Shape validation against a schema happens in Build.
func (b *TypeBuilder) TypeDef() (structype.TypeDef, error) {
	def := structype.TypeDef{Name: b.name, Kind: b.kind}
	for _, ann := range b.typeAnns {
		conv, iss := convertAnn("/", b.name, ann)
		if len(iss) > 0 {
			return structype.TypeDef{}, iss
		}
		def.TypeAnnotations = append(def.TypeAnnotations, conv)
	}
	for _, m := range b.members {
		member := structype.Member{Name: m.name}
		for _, ann := range m.anns {
			conv, iss := convertAnn("/"+m.name, m.name, ann)
			if len(iss) > 0 {
				return structype.TypeDef{}, iss
			}
			member.Annotations = append(member.Annotations, conv)
		}
		def.Members = append(def.Members, member)
	}
	return def, nil
}

// Build validates the declaration under schema and produces its
// Description.
func (b *TypeBuilder) Build(schema structype.SchemaKind) (*structype.Description, error) {
	def, err := b.TypeDef()
	if err != nil {
		return nil, err
	}
	return structype.DescribeTypeDef(def, schema)
}

// MustBuild is Build panicking on failure, for package init use.
func (b *TypeBuilder) MustBuild(schema structype.SchemaKind) *structype.Description {
	d, err := b.Build(schema)
	if err != nil {
		panic(err)
	}
	return d
}

// convertAnn checks literals: every declared value must be a plain string.
// Bare keys, nested declarations, and non-string literals all map to
// malformed_value.
func convertAnn(path, owner string, ann Ann) (structype.Annotation, structype.Issues) {
	if ann.single {
		s, ok := ann.label.(string)
		if !ok {
			return structype.Annotation{}, malformedIssue(path, owner, ann.label)
		}
		return structype.Label(s), nil
	}
	pairs := make([]structype.Pair, 0, len(ann.pairs))
	for _, kv := range ann.pairs {
		if !kv.hasValue {
			return structype.Annotation{}, structype.Issues{{
				Path:    path,
				Code:    structype.CodeMalformedValue,
				Message: i18n.T(structype.CodeMalformedValue, map[string]string{"member": owner, "key": kv.Key}),
				Hint:    fmt.Sprintf("key %q has no value", kv.Key),
			}}
		}
		s, ok := kv.Value.(string)
		if !ok {
			return structype.Annotation{}, malformedIssue(path, owner, kv.Value)
		}
		pairs = append(pairs, structype.Pair{Key: kv.Key, Value: s})
	}
	return structype.Pairs(pairs...), nil
}

func malformedIssue(path, owner string, got any) structype.Issues {
	return structype.Issues{{
		Path:    path,
		Code:    structype.CodeMalformedValue,
		Message: i18n.T(structype.CodeMalformedValue, map[string]string{"member": owner}),
		Hint:    fmt.Sprintf("only string values are supported, got %T", got),
	}}
}
