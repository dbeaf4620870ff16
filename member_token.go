package structype

import (
	"reflect"
)

// MemberOf resolves a top-level struct field of T, selected by address, to
// its parsed member (name plus annotations). The selector must return the
// address of a top-level field, e.g.:
//
//	MemberOf[User](func(u *User) *string { return &u.Username })
//
// This guarantees compile-time errors if the field is renamed or removed.
// ok is false when the field's annotation does not parse.
func MemberOf[T any, F any](selector func(*T) *F, opt ...DescribeOpt) (Member, bool) {
	sf := fieldBySelector(selector)
	m, iss := memberFromField(sf, resolveTags(opt))
	if len(iss) > 0 {
		return Member{}, false
	}
	return m, true
}

// OverrideOf returns the flat-schema value for the selected field: the
// override string when a label annotation is present, the field's own name
// otherwise.
func OverrideOf[T any, F any](selector func(*T) *F, opt ...DescribeOpt) string {
	m, ok := MemberOf(selector, opt...)
	if !ok {
		return fieldBySelector(selector).Name
	}
	if len(m.Annotations) == 1 && m.Annotations[0].Form == FormLabel && m.Annotations[0].Value != "" {
		return m.Annotations[0].Value
	}
	return m.Name
}

func fieldBySelector[T any, F any](selector func(*T) *F) reflect.StructField {
	if selector == nil {
		panic("structype.MemberOf: selector must not be nil")
	}
	var zero T
	fp := reflect.ValueOf(selector(&zero)).Pointer()
	rv := reflect.ValueOf(&zero).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		fv := rv.Field(i)
		if !fv.CanAddr() {
			continue
		}
		if fv.Addr().Pointer() == fp {
			return rt.Field(i)
		}
	}
	panic("structype.MemberOf: selector must return address of a top-level field")
}
