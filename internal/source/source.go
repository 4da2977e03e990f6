// Package source provides record stream sources for GoProfile.
//
// A Source produces records one at a time in arrival order; the aggregation
// core never performs I/O itself.
package source

import "github.com/dbsmedya/goprofile/internal/record"

// Source is a stream of records. Next returns io.EOF when the stream is
// exhausted. A record-level error from Next (e.g. one undecodable input
// line) concerns only the current record and leaves the stream usable.
// A stream-level failure is returned once; after that, Next returns
// io.EOF, so a loop consuming until EOF always terminates.
type Source interface {
	Next() (record.Record, error)
	Close() error
}
