package structype

// Package structype builds serialized key/value descriptions of a type's
// members from per-member metadata annotations.
//
// It provides:
//
// - Reflection-based description of structs via struct tags (Describe/DescribeType)
// - An explicit builder for structs, enums, and unions under dsl/
// - A stable error model via Issues (member path, code, message)
// - Three description schemas: flat map, metadata list, structured list
// - A type-keyed registry exposing the two accessor operations (AsString/PrintFields)
//
// Design policy:
// - Keep only public APIs in the root package; put the annotation grammar under internal/.
// - Place the builder under dsl/ and the CLI under cmd/structype.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	type User struct {
//		ID       int64  `structype_meta:"override_name=Primary ID,order=1"`
//		Username string `structype_meta:"override_name=name,order=0"`
//		Org      string
//	}
//
//	d, err := structype.Describe[User](structype.SchemaStructured)
//	fmt.Println(d.AsString())
//
// A description is computed once from the type's static shape and never
// recomputed; both accessors return the same pre-baked text on every call.
