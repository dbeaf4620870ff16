package structype

import (
	"reflect"

	"github.com/structype/structype/i18n"
	"github.com/structype/structype/internal/annot"
)

// Describe builds a Description for struct type T from its fields and
// struct-tag annotations.
func Describe[T any](schema SchemaKind, opt ...DescribeOpt) (*Description, error) {
	return DescribeType(reflect.TypeOf((*T)(nil)).Elem(), schema, opt...)
}

// DescribeType is the non-generic form of Describe. rt must be a struct
// type with at least one field; anything else fails with unsupported_shape.
func DescribeType(rt reflect.Type, schema SchemaKind, opt ...DescribeOpt) (*Description, error) {
	def, err := TypeDefOf(rt, opt...)
	if err != nil {
		return nil, err
	}
	return DescribeTypeDef(def, schema)
}

// TypeDefOf builds a TypeDef from a struct type's static shape. Field tags
// carry the annotations; names of unexported fields are read like any
// other (no value access is involved).
func TypeDefOf(rt reflect.Type, opt ...DescribeOpt) (TypeDef, error) {
	if rt == nil || rt.Kind() != reflect.Struct {
		name := "<nil>"
		if rt != nil {
			name = rt.String()
		}
		return TypeDef{}, Issues{{
			Path:    "/",
			Code:    CodeUnsupportedShape,
			Message: i18n.T(CodeUnsupportedShape, map[string]string{"type": name}),
			Hint:    "only struct types can be described by reflection",
		}}
	}
	tags := resolveTags(opt)
	def := TypeDef{Name: rt.Name(), Kind: KindStruct, Members: make([]Member, 0, rt.NumField())}
	for i := 0; i < rt.NumField(); i++ {
		m, iss := memberFromField(rt.Field(i), tags)
		if len(iss) > 0 {
			return TypeDef{}, iss
		}
		def.Members = append(def.Members, m)
	}
	return def, nil
}

// memberFromField reads both marker tags off one field. Carrying both is
// represented as two annotations; validation rejects that later.
func memberFromField(sf reflect.StructField, tags TagSet) (Member, Issues) {
	m := Member{Name: sf.Name}
	if v, ok := sf.Tag.Lookup(tags.Label); ok {
		m.Annotations = append(m.Annotations, Label(v))
	}
	if v, ok := sf.Tag.Lookup(tags.Meta); ok {
		pairs, err := annot.ParsePairs(v)
		if err != nil {
			return Member{}, Issues{{
				Path:    "/" + sf.Name,
				Code:    CodeMalformedValue,
				Message: i18n.T(CodeMalformedValue, map[string]string{"member": sf.Name}),
				Hint:    "pair form is key=value,key2=value2",
				Cause:   err,
			}}
		}
		ann := Annotation{Form: FormPairs, Pairs: make([]Pair, 0, len(pairs))}
		for _, p := range pairs {
			ann.Pairs = append(ann.Pairs, Pair{Key: p.Key, Value: p.Value})
		}
		m.Annotations = append(m.Annotations, ann)
	}
	return m, nil
}

func resolveTags(opt []DescribeOpt) TagSet {
	tags := DefaultTags
	if len(opt) > 0 {
		if opt[0].Tags.Label != "" {
			tags.Label = opt[0].Tags.Label
		}
		if opt[0].Tags.Meta != "" {
			tags.Meta = opt[0].Tags.Meta
		}
	}
	return tags
}
