package record

// EnumerateOptions controls which properties Enumerate yields.
type EnumerateOptions struct {
	// Kinds restricts enumeration to the listed member kinds.
	// Empty means the default of data and computed properties.
	Kinds []PropertyKind

	// Exclude lists property names to skip. Names are compared exactly,
	// with no case folding.
	Exclude []string
}

// DefaultKinds returns the member kinds enumerated when no restriction
// is given: data properties and computed properties.
func DefaultKinds() []PropertyKind {
	return []PropertyKind{KindData, KindComputed}
}

// Enumerate returns the ordered property names on rec whose kind is in
// opts.Kinds and whose name is not in opts.Exclude. Order follows the
// record's native member declaration order. A record with no qualifying
// properties yields an empty result, not an error.
func Enumerate(rec Record, opts EnumerateOptions) ([]string, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}

	kinds := opts.Kinds
	if len(kinds) == 0 {
		kinds = DefaultKinds()
	}
	wantKind := make(map[PropertyKind]bool, len(kinds))
	for _, k := range kinds {
		wantKind[k] = true
	}

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[name] = true
	}

	names := []string{}
	for _, prop := range rec.Properties() {
		if !wantKind[prop.Kind] {
			continue
		}
		if excluded[prop.Name] {
			continue
		}
		names = append(names, prop.Name)
	}

	return names, nil
}
