package structype

// Kind classifies the type definition being described.
type Kind int

const (
	KindStruct Kind = iota
	KindEnum        // Members are variants.
	KindUnion       // Members are named fields sharing storage.
)

// String returns the lowercase kind name used in definition files.
func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	default:
		return "struct"
	}
}

// SchemaKind selects the description-record schema produced for a type.
type SchemaKind int

const (
	SchemaFlat       SchemaKind = iota // member -> override string (or member name)
	SchemaMetaList                     // ordered [{member: {k: v, ...}}, ...]
	SchemaStructured                   // ordered [{"field_name": ..., "meta": {...}}, ...]
)

// String returns the schema name accepted by the CLI's -schema flag.
func (s SchemaKind) String() string {
	switch s {
	case SchemaMetaList:
		return "meta"
	case SchemaStructured:
		return "structured"
	default:
		return "flat"
	}
}

// TagSet names the struct-tag markers recognized on members.
type TagSet struct {
	Label string // single-string form, e.g. `structype_label:"override"`
	Meta  string // pair form, e.g. `structype_meta:"k=v,k2=v2"`
}

// DefaultTags is the marker set used when DescribeOpt.Tags is zero.
var DefaultTags = TagSet{Label: "structype_label", Meta: "structype_meta"}

// DescribeOpt bundles description options.
type DescribeOpt struct {
	Tags TagSet
}

// AnnotationForm distinguishes the two accepted annotation shapes.
type AnnotationForm int

const (
	FormLabel AnnotationForm = iota // single string value
	FormPairs                      // ordered key=string pairs
)

// Pair is one key=value entry of a pair-form annotation.
type Pair struct {
	Key   string
	Value string
}

// Annotation is a parsed metadata marker attached to a member: either a
// single override string (FormLabel) or an ordered set of key/value pairs
// (FormPairs).
type Annotation struct {
	Form  AnnotationForm
	Value string // FormLabel only
	Pairs []Pair // FormPairs only; declaration order
}

// Label builds a single-string annotation.
func Label(value string) Annotation { return Annotation{Form: FormLabel, Value: value} }

// Pairs builds a pair-form annotation preserving declaration order.
func Pairs(pairs ...Pair) Annotation {
	return Annotation{Form: FormPairs, Pairs: append([]Pair(nil), pairs...)}
}

// Member is a field or variant of a type definition. Annotations holds the
// raw annotations found on it; validation enforces at most one.
type Member struct {
	Name        string
	Annotations []Annotation
}

// TypeDef is the structural definition a description is computed from.
// TypeAnnotations holds annotations found on the type itself; any entry is a
// validation failure.
type TypeDef struct {
	Name            string
	Kind            Kind
	Members         []Member
	TypeAnnotations []Annotation
}
