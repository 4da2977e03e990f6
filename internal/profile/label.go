// Package profile provides core type aggregation functionality for GoProfile.
package profile

import "reflect"

// TypeLabel identifies the runtime type of an observed value. Labels are
// opaque strings compared only for equality; no type-family unification
// (e.g. numeric widening) is ever applied.
type TypeLabel = string

// LabelNull is the sentinel label recorded when a value is absent, nil,
// or its type cannot be determined.
const LabelNull TypeLabel = "null"

// LabelFor returns the fully-qualified runtime type label for v, or
// LabelNull when v is nil (typed or untyped).
//
// LabelFor never panics: any failure while reading the type is recovered
// and mapped to LabelNull, so one malformed value cannot abort a stream.
func LabelFor(v interface{}) (label TypeLabel) {
	defer func() {
		if r := recover(); r != nil {
			label = LabelNull
		}
	}()

	if v == nil {
		return LabelNull
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return LabelNull
		}
	}

	return rv.Type().String()
}
