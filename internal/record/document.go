package record

import "fmt"

// DocumentRecord is an ordered property bag. It backs record representations
// whose member order is known at construction time, such as decoded JSON
// objects or SQL result rows.
//
// All properties of a DocumentRecord are data properties.
type DocumentRecord struct {
	keys   []string
	values map[string]interface{}
}

// NewDocumentRecord creates an empty DocumentRecord.
func NewDocumentRecord() *DocumentRecord {
	return &DocumentRecord{
		values: make(map[string]interface{}),
	}
}

// Set stores a value under name. The first Set for a name establishes its
// position in declaration order; later Sets overwrite the value in place.
func (d *DocumentRecord) Set(name string, value interface{}) {
	if _, exists := d.values[name]; !exists {
		d.keys = append(d.keys, name)
	}
	d.values[name] = value
}

// Len returns the number of properties on the record.
func (d *DocumentRecord) Len() int {
	return len(d.keys)
}

// Properties returns the record's properties in declaration order.
func (d *DocumentRecord) Properties() []PropertyDescriptor {
	props := make([]PropertyDescriptor, 0, len(d.keys))
	for _, k := range d.keys {
		props = append(props, PropertyDescriptor{Name: k, Kind: KindData})
	}
	return props
}

// Value returns the value stored under name.
func (d *DocumentRecord) Value(name string) (interface{}, error) {
	v, exists := d.values[name]
	if !exists {
		return nil, fmt.Errorf("property %q not found", name)
	}
	return v, nil
}
