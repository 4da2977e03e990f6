// Package record defines the capability interface for introspectable records
// and the property enumeration rules built on top of it.
package record

import "errors"

// ErrNilRecord is returned when a nil record is passed to an operation
// that requires one.
var ErrNilRecord = errors.New("record is nil")

// PropertyKind classifies a named member of a record.
type PropertyKind int

const (
	// KindData is a stored, settable value: a struct field or document key.
	KindData PropertyKind = iota
	// KindComputed is a value derived from a nullary accessor method.
	KindComputed
)

// String returns the kind name for logging and error messages.
func (k PropertyKind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindComputed:
		return "computed"
	default:
		return "unknown"
	}
}

// PropertyDescriptor describes a single named member of a record.
type PropertyDescriptor struct {
	Name string
	Kind PropertyKind
}

// Record is the capability interface every record representation must
// satisfy. Properties returns descriptors in the record's native member
// declaration order. Value reads the current value of a named property;
// it returns an error when the property does not exist or cannot be read.
//
// Records are read-only inputs: implementations must not be mutated by
// consumers of this interface.
type Record interface {
	Properties() []PropertyDescriptor
	Value(name string) (interface{}, error)
}
