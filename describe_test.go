package structype_test

import (
	"reflect"
	"strings"
	"testing"

	j "github.com/goccy/go-json"

	structype "github.com/structype/structype"
)

type user struct {
	ID       int64  `structype_meta:"override_name=Primary ID,order=1"`
	Username string `structype_meta:"override_name=name,order=0"`
	Org      string
}

type labeled struct {
	MyString string `structype_label:"Overridde name for string"`
	MyInt64  int64  `structype_label:"int_override"`
	MyFloat  float64
	Nested   struct{ X int }
}

type plain struct {
	A string
	B int
	C float64
}

func TestDescribe_Flat_NoAnnotations(t *testing.T) {
	d, err := structype.Describe[plain](structype.SchemaFlat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, ok := d.Record().(structype.FlatRecord)
	if !ok {
		t.Fatalf("expected FlatRecord, got %T", d.Record())
	}
	if len(rec) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(rec))
	}
	for _, name := range []string{"A", "B", "C"} {
		if rec[name] != name {
			t.Fatalf("expected %q to map to itself, got %q", name, rec[name])
		}
	}
}

func TestDescribe_Flat_Override(t *testing.T) {
	d, err := structype.Describe[labeled](structype.SchemaFlat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := d.Record().(structype.FlatRecord)
	if rec["MyString"] != "Overridde name for string" {
		t.Fatalf("expected override, got %q", rec["MyString"])
	}
	if rec["MyInt64"] != "int_override" {
		t.Fatalf("expected override, got %q", rec["MyInt64"])
	}
	if rec["MyFloat"] != "MyFloat" {
		t.Fatalf("expected fallback to field name, got %q", rec["MyFloat"])
	}
}

func TestDescribe_Structured_ExactText(t *testing.T) {
	d, err := structype.Describe[user](structype.SchemaStructured)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `[{"field_name":"ID","meta":{"override_name":"Primary ID","order":"1"}},{"field_name":"Username","meta":{"override_name":"name","order":"0"}},{"field_name":"Org","meta":{}}]`
	if got := d.AsString(); got != want {
		t.Fatalf("serialized description mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestDescribe_MetaList_ExactText(t *testing.T) {
	d, err := structype.Describe[user](structype.SchemaMetaList)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `[{"ID":{"override_name":"Primary ID","order":"1"}},{"Username":{"override_name":"name","order":"0"}},{"Org":{}}]`
	if got := d.AsString(); got != want {
		t.Fatalf("serialized description mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestDescribe_RoundTrip_Structured(t *testing.T) {
	d, err := structype.Describe[user](structype.SchemaStructured)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back []struct {
		FieldName string            `json:"field_name"`
		Meta      map[string]string `json:"meta"`
	}
	if err := j.Unmarshal([]byte(d.AsString()), &back); err != nil {
		t.Fatalf("round-trip parse failed: %v", err)
	}
	if len(back) != 3 {
		t.Fatalf("expected 3 records, got %d", len(back))
	}
	order := []string{"ID", "Username", "Org"}
	for i, name := range order {
		if back[i].FieldName != name {
			t.Fatalf("record %d: expected %q, got %q", i, name, back[i].FieldName)
		}
	}
	if back[0].Meta["override_name"] != "Primary ID" || back[0].Meta["order"] != "1" {
		t.Fatalf("record 0 meta mismatch: %v", back[0].Meta)
	}
	if len(back[2].Meta) != 0 {
		t.Fatalf("expected empty meta for unannotated member, got %v", back[2].Meta)
	}
}

func TestDescribe_RoundTrip_Flat(t *testing.T) {
	d, err := structype.Describe[labeled](structype.SchemaFlat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back map[string]string
	if err := j.Unmarshal([]byte(d.AsString()), &back); err != nil {
		t.Fatalf("round-trip parse failed: %v", err)
	}
	if !reflect.DeepEqual(back, map[string]string(d.Record().(structype.FlatRecord))) {
		t.Fatalf("round-trip mismatch: %v", back)
	}
}

func TestDescribeType_NonStruct_Fails(t *testing.T) {
	_, err := structype.DescribeType(reflect.TypeOf(0), structype.SchemaFlat)
	assertCode(t, err, structype.CodeUnsupportedShape)
}

func TestDescribe_EmptyStruct_Fails(t *testing.T) {
	type empty struct{}
	_, err := structype.Describe[empty](structype.SchemaFlat)
	assertCode(t, err, structype.CodeUnsupportedShape)
}

func TestDescribe_BothTags_Fails(t *testing.T) {
	type both struct {
		A string `structype_label:"x" structype_meta:"k=v"`
	}
	_, err := structype.Describe[both](structype.SchemaFlat)
	assertCode(t, err, structype.CodeUnsupportedForm)
}

func TestDescribe_WrongFormForSchema(t *testing.T) {
	// pair form under the flat schema
	_, err := structype.Describe[user](structype.SchemaFlat)
	assertCode(t, err, structype.CodeUnsupportedForm)

	// single-string form under a list schema
	_, err = structype.Describe[labeled](structype.SchemaStructured)
	assertCode(t, err, structype.CodeUnsupportedForm)
}

func TestDescribe_MalformedMetaTag_Fails(t *testing.T) {
	type bad struct {
		A string `structype_meta:"orphan"`
	}
	_, err := structype.Describe[bad](structype.SchemaStructured)
	assertCode(t, err, structype.CodeMalformedValue)
}

func TestDescribeTypeDef_TypeAnnotation_Fails(t *testing.T) {
	def := structype.TypeDef{
		Name:            "Tagged",
		Kind:            structype.KindStruct,
		Members:         []structype.Member{{Name: "a"}},
		TypeAnnotations: []structype.Annotation{structype.Label("over_ride name")},
	}
	_, err := structype.DescribeTypeDef(def, structype.SchemaFlat)
	assertCode(t, err, structype.CodeMisplacedAnnotation)
	iss, _ := structype.AsIssues(err)
	if iss[0].Path != "/" {
		t.Fatalf("expected type-level path /, got %q", iss[0].Path)
	}
}

func TestDescribeTypeDef_DuplicateMembers_ListKeepsBoth(t *testing.T) {
	def := structype.TypeDef{
		Name: "Dup",
		Kind: structype.KindStruct,
		Members: []structype.Member{
			{Name: "a", Annotations: []structype.Annotation{structype.Pairs(structype.Pair{Key: "k", Value: "1"})}},
			{Name: "a", Annotations: []structype.Annotation{structype.Pairs(structype.Pair{Key: "k", Value: "2"})}},
		},
	}
	d, err := structype.DescribeTypeDef(def, structype.SchemaStructured)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := d.Record().(structype.StructuredList)
	if len(rec) != 2 {
		t.Fatalf("expected both duplicate members kept, got %d records", len(rec))
	}
}

func TestDescribeTypeDef_UnknownSchemaKind_Fails(t *testing.T) {
	def := structype.TypeDef{
		Name: "S",
		Kind: structype.KindStruct,
		Members: []structype.Member{
			{Name: "a", Annotations: []structype.Annotation{structype.Pairs(structype.Pair{Key: "k", Value: "v"})}},
		},
	}
	d, err := structype.DescribeTypeDef(def, structype.SchemaKind(99))
	if err == nil {
		t.Fatalf("expected error for unknown schema kind, got description %v", d.Record())
	}
	if d != nil {
		t.Fatalf("expected no description alongside the error")
	}
}

func TestDescribe_UnexportedFields(t *testing.T) {
	type hidden struct {
		id  string `structype_label:"Primary ID"`
		Org string
	}
	d, err := structype.Describe[hidden](structype.SchemaFlat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := d.Record().(structype.FlatRecord)
	if len(rec) != 2 {
		t.Fatalf("expected both fields described, got %v", rec)
	}
	if rec["id"] != "Primary ID" {
		t.Fatalf("expected override on unexported field, got %q", rec["id"])
	}
	if rec["Org"] != "Org" {
		t.Fatalf("expected fallback for unannotated field, got %q", rec["Org"])
	}
}

func TestDescribe_CustomTags(t *testing.T) {
	type tagged struct {
		A string `field_meta:"k=v"`
	}
	opt := structype.DescribeOpt{Tags: structype.TagSet{Meta: "field_meta"}}
	d, err := structype.Describe[tagged](structype.SchemaStructured, opt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := d.Record().(structype.StructuredList)
	if v, ok := rec[0].Meta.Get("k"); !ok || v != "v" {
		t.Fatalf("custom marker not honored: %v", rec[0].Meta)
	}
}

func TestDescription_AsYAML_KeepsOrder(t *testing.T) {
	d, err := structype.Describe[user](structype.SchemaStructured)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := d.AsYAML()
	if err != nil {
		t.Fatalf("yaml render failed: %v", err)
	}
	iOverride := strings.Index(out, "override_name")
	iOrder := strings.Index(out, "order")
	if iOverride < 0 || iOrder < 0 || iOrder < iOverride {
		t.Fatalf("expected declaration-order pairs in yaml output:\n%s", out)
	}
}

func TestDescription_WriteTo(t *testing.T) {
	d, err := structype.Describe[plain](structype.SchemaFlat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := &strings.Builder{}
	if _, err := d.WriteTo(b); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if b.String() != d.AsString() {
		t.Fatalf("WriteTo bytes differ from AsString")
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected failure with code %s, got nil", code)
	}
	iss, ok := structype.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got %T: %v", err, err)
	}
	if iss[0].Code != code {
		t.Fatalf("expected code %s, got %s (%v)", code, iss[0].Code, err)
	}
}
