package structype

import (
	"reflect"
	"sync"
)

// The registry is the side table that stands in for generated methods: a
// description is attached to a Go type once and the accessors look it up by
// type identity.
var registry = struct {
	sync.RWMutex
	byType map[reflect.Type]*Description
}{byType: map[reflect.Type]*Description{}}

// Register describes T and attaches the result to T. Re-registering a type
// overwrites; the input is the type's static shape, so the result is the
// same either way.
func Register[T any](schema SchemaKind, opt ...DescribeOpt) (*Description, error) {
	d, err := Describe[T](schema, opt...)
	if err != nil {
		return nil, err
	}
	Attach[T](d)
	return d, nil
}

// MustRegister is Register panicking on failure, for package init use. The
// panic mirrors the compile-time abort the annotations came from.
func MustRegister[T any](schema SchemaKind, opt ...DescribeOpt) *Description {
	d, err := Register[T](schema, opt...)
	if err != nil {
		panic(err)
	}
	return d
}

// Attach stores an externally built Description (for example from the dsl
// builder) under T's identity.
func Attach[T any](d *Description) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	registry.Lock()
	registry.byType[rt] = d
	registry.Unlock()
}

// Lookup returns the Description attached to T, if any.
func Lookup[T any]() (*Description, bool) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	registry.RLock()
	d, ok := registry.byType[rt]
	registry.RUnlock()
	return d, ok
}

// AsString returns T's serialized description. ok is false when T was never
// registered.
func AsString[T any]() (string, bool) {
	d, ok := Lookup[T]()
	if !ok {
		return "", false
	}
	return d.AsString(), true
}

// PrintFields writes T's serialized description to stdout, reporting
// whether T was registered.
func PrintFields[T any]() bool {
	d, ok := Lookup[T]()
	if !ok {
		return false
	}
	d.PrintFields()
	return true
}
