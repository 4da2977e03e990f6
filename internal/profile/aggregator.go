package profile

import (
	"time"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/goprofile/internal/logger"
	"github.com/dbsmedya/goprofile/internal/record"
)

// Options configures an aggregation session.
type Options struct {
	// Properties is an explicit allow-list of property names. When set,
	// only these names are considered; a listed name missing from a
	// particular record is skipped for that record. Names are compared
	// exactly, with no case folding.
	Properties []string

	// Exclude lists property names to skip during enumeration.
	Exclude []string

	// Kinds restricts enumeration to the listed member kinds.
	// Empty means data and computed properties.
	Kinds []record.PropertyKind

	// Logger receives per-observation debug logging. Optional.
	Logger *logger.Logger
}

// Aggregator accumulates the distinct type labels observed per property
// name across a stream of records. State is keyed by property name and
// ordered by first observation, so the final mapping reports properties
// in the order they first appeared across the whole stream.
//
// An Aggregator owns one logical aggregation session. It is not safe for
// concurrent use: Observe calls must be sequential on the same instance.
type Aggregator struct {
	opts    Options
	allow   map[string]bool
	state   *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[TypeLabel, struct{}]]
	log     *logger.Logger
	started time.Time

	recordsObserved int64
	valuesRead      int64
	nullValues      int64
}

// NewAggregator creates an empty aggregation session.
func NewAggregator(opts Options) *Aggregator {
	log := opts.Logger
	if log == nil {
		log = logger.NewDefault()
	}

	var allow map[string]bool
	if len(opts.Properties) > 0 {
		allow = make(map[string]bool, len(opts.Properties))
		for _, name := range opts.Properties {
			allow[name] = true
		}
	}

	return &Aggregator{
		opts:    opts,
		allow:   allow,
		state:   orderedmap.NewOrderedMap[string, *orderedmap.OrderedMap[TypeLabel, struct{}]](),
		log:     log,
		started: time.Now(),
	}
}

// Observe processes a single record: every qualifying property contributes
// its current value's type label to that property's ordered label set.
//
// A nil record returns record.ErrNilRecord and aborts only this call, never
// the session. Failures to read or type a specific value are recovered
// locally to the null sentinel and are not surfaced.
func (a *Aggregator) Observe(rec record.Record) error {
	names, err := record.Enumerate(rec, record.EnumerateOptions{
		Kinds:   a.opts.Kinds,
		Exclude: a.opts.Exclude,
	})
	if err != nil {
		return err
	}

	a.recordsObserved++

	for _, name := range names {
		if a.allow != nil && !a.allow[name] {
			continue
		}

		label := a.labelOf(rec, name)
		a.valuesRead++
		if label == LabelNull {
			a.nullValues++
		}

		labels, exists := a.state.Get(name)
		if !exists {
			// First observation fixes the property's output position.
			labels = orderedmap.NewOrderedMap[TypeLabel, struct{}]()
			a.state.Set(name, labels)
			a.log.Debugw("property discovered", "property", name, "label", label)
		}

		if _, seen := labels.Get(label); !seen {
			labels.Set(label, struct{}{})
		}
	}

	return nil
}

// labelOf reads the value of name on rec and resolves its type label.
// Read failures map to the null sentinel.
func (a *Aggregator) labelOf(rec record.Record, name string) TypeLabel {
	v, err := rec.Value(name)
	if err != nil {
		a.log.Debugw("value read failed, recording null label", "property", name, "error", err)
		return LabelNull
	}
	return LabelFor(v)
}

// Finalize returns a snapshot of the accumulated mapping in first-observed
// property order. It is non-destructive: calling Finalize repeatedly
// without intervening Observe calls yields equal entries each time.
func (a *Aggregator) Finalize() *Result {
	entries := make([]Entry, 0, a.state.Len())
	for el := a.state.Front(); el != nil; el = el.Next() {
		entries = append(entries, Entry{
			Name:   el.Key,
			Labels: el.Value.Keys(),
		})
	}

	return &Result{
		Entries: entries,
		Stats: AuditStats{
			RecordsObserved: a.recordsObserved,
			PropertiesSeen:  a.state.Len(),
			ValuesRead:      a.valuesRead,
			NullValues:      a.nullValues,
			Duration:        time.Since(a.started),
		},
	}
}
