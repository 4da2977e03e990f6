package record

import (
	"fmt"
	"reflect"
)

// StructRecord adapts an arbitrary Go struct value to the Record interface
// using reflection.
//
// Exported fields are exposed as data properties in field declaration order.
// Exported methods that take no arguments and return exactly one value (or
// one value plus an error) are exposed as computed properties after the
// fields, in method order. Methods with parameters, no results, or other
// result shapes are treated as plain methods and never enumerated, as are
// unexported members.
type StructRecord struct {
	value reflect.Value
}

// NewStructRecord wraps v as a Record. Pointers are dereferenced.
// Returns an error when v is nil, a nil pointer, or not a struct.
func NewStructRecord(v interface{}) (*StructRecord, error) {
	if v == nil {
		return nil, ErrNilRecord
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, ErrNilRecord
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("record must be a struct or struct pointer, got %s", rv.Kind())
	}

	return &StructRecord{value: rv}, nil
}

// Properties returns exported fields followed by accessor methods,
// each group in its declaration order.
func (s *StructRecord) Properties() []PropertyDescriptor {
	t := s.value.Type()

	var props []PropertyDescriptor
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		props = append(props, PropertyDescriptor{Name: field.Name, Kind: KindData})
	}

	// Accessor methods are looked up on the addressable value when possible
	// so pointer-receiver accessors are included.
	mt := s.methodOwner().Type()
	for i := 0; i < mt.NumMethod(); i++ {
		method := mt.Method(i)
		// Method types from Type.Method carry the receiver as input 0.
		if !isAccessor(method.Type, 1) {
			continue
		}
		props = append(props, PropertyDescriptor{Name: method.Name, Kind: KindComputed})
	}

	return props
}

// Value reads a field or invokes an accessor method by name.
// Accessors returning (value, error) surface the error.
func (s *StructRecord) Value(name string) (interface{}, error) {
	if field, ok := s.value.Type().FieldByName(name); ok && field.IsExported() {
		return s.value.FieldByIndex(field.Index).Interface(), nil
	}

	owner := s.methodOwner()
	method := owner.MethodByName(name)
	if method.IsValid() && isAccessor(method.Type(), 0) {
		results := method.Call(nil)
		if len(results) == 2 {
			if err, _ := results[1].Interface().(error); err != nil {
				return nil, fmt.Errorf("accessor %s failed: %w", name, err)
			}
		}
		return results[0].Interface(), nil
	}

	return nil, fmt.Errorf("property %q not found", name)
}

// methodOwner returns the value to resolve methods against: a pointer when
// the wrapped value is addressable, otherwise the value itself.
func (s *StructRecord) methodOwner() reflect.Value {
	if s.value.CanAddr() {
		return s.value.Addr()
	}
	return s.value
}

// isAccessor reports whether a method type has the shape of a gettable
// computed property: no arguments beyond the receiver, one result or
// (result, error). recvIn is the number of receiver inputs the method type
// carries (1 for unbound method types, 0 for bound ones).
func isAccessor(mt reflect.Type, recvIn int) bool {
	if mt.NumIn() != recvIn {
		return false
	}

	switch mt.NumOut() {
	case 1:
		return true
	case 2:
		return mt.Out(1) == errorType
	default:
		return false
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()
