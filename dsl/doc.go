// Package dsl provides the explicit declaration API for structype: the
// no-reflection path for types whose shape cannot be expressed as a Go
// struct (enums, unions) or whose annotations carry values a struct tag
// cannot.
//
// Entry points
//   - Struct(name)/Enum(name)/Union(name): create a type builder; chain
//     Field/Variant then Build(schema) or MustBuild(schema).
//   - Label(v): the single-string annotation form.
//   - Pairs(KV(k, v), ...): the ordered pair form; Key(k) declares a bare
//     key, which is rejected at Build.
//
// Annotation values are declared as `any` on purpose: a non-string literal
// is representable here and fails validation with malformed_value, the same
// contract the struct-tag path enforces grammatically.
//
// Design guidelines
//   - Keep public APIs minimal; define small and clear caller-side interfaces.
package dsl
