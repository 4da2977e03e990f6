package profile

import "time"

// Entry is one row of the final mapping: a property name and the ordered
// set of distinct type labels observed for it. Labels appear in first-seen
// order and never contain duplicates.
type Entry struct {
	Name   string
	Labels []TypeLabel
}

// Result is the output of an aggregation session: one entry per distinct
// property name observed, ordered by first observation across the whole
// stream, plus processing statistics.
type Result struct {
	Entries []Entry
	Stats   AuditStats
}

// AuditStats contains statistics about an aggregation session.
type AuditStats struct {
	RecordsObserved int64         // Records passed through Observe
	PropertiesSeen  int           // Distinct property names discovered
	ValuesRead      int64         // Property values read across all records
	NullValues      int64         // Values recorded under the null sentinel
	Duration        time.Duration // Time since session construction
}

// Labels returns the label set for the named property, or nil when the
// property was never observed.
func (r *Result) Labels(name string) []TypeLabel {
	for _, e := range r.Entries {
		if e.Name == name {
			return e.Labels
		}
	}
	return nil
}
