package structype

import (
	"fmt"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/structype/structype/i18n"
)

// Description is the immutable result of describing one type definition.
// It is computed once from the definition's static shape; both accessors
// return the same pre-baked text on every call.
type Description struct {
	typeName string
	kind     Kind
	schema   SchemaKind
	record   any
	text     string
}

// TypeName returns the described type's name.
func (d *Description) TypeName() string { return d.typeName }

// Kind returns the described type's kind.
func (d *Description) Kind() Kind { return d.kind }

// Schema returns the schema the record was built under.
func (d *Description) Schema() SchemaKind { return d.schema }

// Record returns the typed record: FlatRecord, MetaList, or StructuredList
// depending on Schema.
func (d *Description) Record() any { return d.record }

// AsString returns the serialized description as JSON text.
func (d *Description) AsString() string { return d.text }

// PrintFields writes the serialized description and a newline to stdout.
func (d *Description) PrintFields() { fmt.Println(d.text) }

// WriteTo writes the serialized description to w.
func (d *Description) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.text)
	return int64(n), err
}

// AsYAML renders the record as YAML with the same ordering guarantees as
// the JSON form.
func (d *Description) AsYAML() (string, error) {
	b, err := yaml.Marshal(d.record)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DescribeTypeDef validates def's annotations against schema, builds the
// description record, and serializes it. Any shape violation aborts with
// Issues; there is no partial result.
func DescribeTypeDef(def TypeDef, schema SchemaKind) (*Description, error) {
	switch schema {
	case SchemaFlat, SchemaMetaList, SchemaStructured:
	default:
		return nil, fmt.Errorf("structype: unknown schema kind %d", schema)
	}
	if iss := validateDef(def, schema); len(iss) > 0 {
		return nil, iss
	}
	record := buildRecord(def, schema)
	text, err := j.Marshal(record)
	if err != nil {
		return nil, err
	}
	return &Description{
		typeName: def.Name,
		kind:     def.Kind,
		schema:   schema,
		record:   record,
		text:     string(text),
	}, nil
}

// validateDef enforces the annotation shape rules. Validation is fail-fast:
// the first violation aborts, matching the compile-time contract the
// annotations came from.
func validateDef(def TypeDef, schema SchemaKind) Issues {
	if len(def.TypeAnnotations) > 0 {
		return Issues{{
			Path:    "/",
			Code:    CodeMisplacedAnnotation,
			Message: i18n.T(CodeMisplacedAnnotation, map[string]string{"type": def.Name}),
		}}
	}
	if len(def.Members) == 0 {
		return Issues{{
			Path:    "/",
			Code:    CodeUnsupportedShape,
			Message: i18n.T(CodeUnsupportedShape, map[string]string{"type": def.Name}),
			Hint:    "only types with named members can be described",
		}}
	}
	for _, m := range def.Members {
		if iss := validateMember(m, schema); len(iss) > 0 {
			return iss
		}
	}
	return nil
}

func validateMember(m Member, schema SchemaKind) Issues {
	path := "/" + m.Name
	if len(m.Annotations) > 1 {
		return Issues{{
			Path:    path,
			Code:    CodeUnsupportedForm,
			Message: i18n.T(CodeUnsupportedForm, map[string]string{"member": m.Name}),
			Hint:    "a member takes at most one annotation",
		}}
	}
	if len(m.Annotations) == 0 {
		return nil
	}
	ann := m.Annotations[0]
	switch schema {
	case SchemaFlat:
		if ann.Form != FormLabel {
			return Issues{{
				Path:    path,
				Code:    CodeUnsupportedForm,
				Message: i18n.T(CodeUnsupportedForm, map[string]string{"member": m.Name}),
				Hint:    "the flat schema takes a single string value",
			}}
		}
	default: // SchemaMetaList, SchemaStructured
		if ann.Form != FormPairs {
			return Issues{{
				Path:    path,
				Code:    CodeUnsupportedForm,
				Message: i18n.T(CodeUnsupportedForm, map[string]string{"member": m.Name}),
				Hint:    "the list schemas take key=\"value\" pairs",
			}}
		}
		for _, p := range ann.Pairs {
			if p.Key == "" {
				return Issues{{
					Path:    path,
					Code:    CodeMalformedValue,
					Message: i18n.T(CodeMalformedValue, map[string]string{"member": m.Name}),
					Hint:    "pair key must not be empty",
				}}
			}
		}
	}
	return nil
}

// buildRecord assumes def already validated. Members appear exactly once
// each, in declaration order for the list schemas.
func buildRecord(def TypeDef, schema SchemaKind) any {
	switch schema {
	case SchemaMetaList:
		out := make(MetaList, 0, len(def.Members))
		for _, m := range def.Members {
			out = append(out, MemberMeta{Name: m.Name, Meta: memberMeta(m)})
		}
		return out
	case SchemaStructured:
		out := make(StructuredList, 0, len(def.Members))
		for _, m := range def.Members {
			out = append(out, FieldRecord{FieldName: m.Name, Meta: memberMeta(m)})
		}
		return out
	default:
		out := make(FlatRecord, len(def.Members))
		for _, m := range def.Members {
			// An annotation with no usable string falls back to the
			// member's own name, like an absent annotation.
			if len(m.Annotations) == 1 && m.Annotations[0].Value != "" {
				out[m.Name] = m.Annotations[0].Value
			} else {
				out[m.Name] = m.Name
			}
		}
		return out
	}
}

func memberMeta(m Member) Meta {
	if len(m.Annotations) == 0 {
		return Meta{}
	}
	return Meta(m.Annotations[0].Pairs)
}
