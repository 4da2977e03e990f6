package record

import (
	"errors"
	"testing"
	"time"
)

type invoice struct {
	ID      int64
	Total   float64
	Issued  time.Time
	private string
}

// Customer is a computed property: nullary, one result.
func (i invoice) Customer() string { return "acme" }

// Refresh is method-like: no results.
func (i invoice) Refresh() {}

// Lookup is method-like: takes an argument.
func (i invoice) Lookup(key string) string { return key }

type guarded struct {
	Name string
	fail bool
}

// Snapshot is a computed property with the (value, error) shape.
func (g *guarded) Snapshot() (string, error) {
	if g.fail {
		return "", errors.New("snapshot unavailable")
	}
	return g.Name, nil
}

func TestStructRecord_FieldsInDeclarationOrder(t *testing.T) {
	rec, err := NewStructRecord(invoice{ID: 7, Total: 12.5})
	if err != nil {
		t.Fatalf("NewStructRecord returned error: %v", err)
	}

	props := rec.Properties()
	wantNames := []string{"ID", "Total", "Issued", "Customer"}
	if len(props) != len(wantNames) {
		t.Fatalf("Expected %d properties, got %d: %v", len(wantNames), len(props), props)
	}
	for i, want := range wantNames {
		if props[i].Name != want {
			t.Errorf("Expected property %d to be %s, got %s", i, want, props[i].Name)
		}
	}
}

func TestStructRecord_Kinds(t *testing.T) {
	rec, err := NewStructRecord(invoice{})
	if err != nil {
		t.Fatalf("NewStructRecord returned error: %v", err)
	}

	for _, p := range rec.Properties() {
		switch p.Name {
		case "Customer":
			if p.Kind != KindComputed {
				t.Errorf("Expected Customer to be computed, got %s", p.Kind)
			}
		default:
			if p.Kind != KindData {
				t.Errorf("Expected %s to be data, got %s", p.Name, p.Kind)
			}
		}
	}
}

func TestStructRecord_MethodLikeMembersExcluded(t *testing.T) {
	rec, err := NewStructRecord(invoice{})
	if err != nil {
		t.Fatalf("NewStructRecord returned error: %v", err)
	}

	for _, p := range rec.Properties() {
		if p.Name == "Refresh" || p.Name == "Lookup" {
			t.Errorf("Method-like member %s should not be enumerated", p.Name)
		}
	}
}

func TestStructRecord_UnexportedFieldExcluded(t *testing.T) {
	rec, err := NewStructRecord(invoice{private: "hidden"})
	if err != nil {
		t.Fatalf("NewStructRecord returned error: %v", err)
	}

	for _, p := range rec.Properties() {
		if p.Name == "private" {
			t.Error("Unexported field should not be enumerated")
		}
	}
}

func TestStructRecord_FieldValue(t *testing.T) {
	rec, err := NewStructRecord(invoice{ID: 42})
	if err != nil {
		t.Fatalf("NewStructRecord returned error: %v", err)
	}

	v, err := rec.Value("ID")
	if err != nil {
		t.Fatalf("Value(ID) returned error: %v", err)
	}
	if v != int64(42) {
		t.Errorf("Expected int64(42), got %v", v)
	}
}

func TestStructRecord_ComputedValue(t *testing.T) {
	rec, err := NewStructRecord(invoice{})
	if err != nil {
		t.Fatalf("NewStructRecord returned error: %v", err)
	}

	v, err := rec.Value("Customer")
	if err != nil {
		t.Fatalf("Value(Customer) returned error: %v", err)
	}
	if v != "acme" {
		t.Errorf("Expected acme, got %v", v)
	}
}

func TestStructRecord_PointerReceiverAccessor(t *testing.T) {
	rec, err := NewStructRecord(&guarded{Name: "ok"})
	if err != nil {
		t.Fatalf("NewStructRecord returned error: %v", err)
	}

	props := rec.Properties()
	found := false
	for _, p := range props {
		if p.Name == "Snapshot" && p.Kind == KindComputed {
			found = true
		}
	}
	if !found {
		t.Fatalf("Expected Snapshot accessor in properties, got %v", props)
	}

	v, err := rec.Value("Snapshot")
	if err != nil {
		t.Fatalf("Value(Snapshot) returned error: %v", err)
	}
	if v != "ok" {
		t.Errorf("Expected ok, got %v", v)
	}
}

func TestStructRecord_AccessorError(t *testing.T) {
	rec, err := NewStructRecord(&guarded{fail: true})
	if err != nil {
		t.Fatalf("NewStructRecord returned error: %v", err)
	}

	if _, err := rec.Value("Snapshot"); err == nil {
		t.Error("Expected accessor error to surface from Value")
	}
}

func TestStructRecord_NilInputs(t *testing.T) {
	if _, err := NewStructRecord(nil); !errors.Is(err, ErrNilRecord) {
		t.Errorf("Expected ErrNilRecord for nil value, got %v", err)
	}

	var p *invoice
	if _, err := NewStructRecord(p); !errors.Is(err, ErrNilRecord) {
		t.Errorf("Expected ErrNilRecord for nil pointer, got %v", err)
	}
}

func TestStructRecord_NonStructRejected(t *testing.T) {
	if _, err := NewStructRecord(42); err == nil {
		t.Error("Expected error for non-struct input")
	}
}
