package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dbsmedya/goprofile/internal/record"
)

// maxLineBytes bounds a single NDJSON line (1 MiB).
const maxLineBytes = 1 << 20

// NDJSONSource reads newline-delimited JSON objects from a reader, one
// record per line. Object key order is preserved as the record's member
// declaration order. Blank lines are skipped.
type NDJSONSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
	line    int64
	done    bool
}

// NewNDJSONSource creates a source reading from r. When r also implements
// io.Closer (e.g. a file), Close closes it.
func NewNDJSONSource(r io.Reader) *NDJSONSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	closer, _ := r.(io.Closer)
	return &NDJSONSource{
		scanner: scanner,
		closer:  closer,
	}
}

// Next returns the next record, io.EOF at end of input, or an error when
// the current line is not a JSON object. A line-level decode error leaves
// the stream usable: the next call moves on to the following line.
//
// A read failure from the underlying scanner (e.g. a line over the size
// cap) is terminal: it is returned exactly once, and every later call
// returns io.EOF so callers looping until EOF always terminate.
func (s *NDJSONSource) Next() (record.Record, error) {
	if s.done {
		return nil, io.EOF
	}

	for s.scanner.Scan() {
		s.line++
		text := strings.TrimSpace(s.scanner.Text())
		if text == "" {
			continue
		}

		rec, err := decodeObject(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", s.line, err)
		}
		return rec, nil
	}

	s.done = true
	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return nil, io.EOF
}

// Close closes the underlying reader when it is closable.
func (s *NDJSONSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// decodeObject parses one JSON object preserving key declaration order.
// Token-level decoding is required here: a plain map would randomize
// member order.
func decodeObject(text string) (*record.DocumentRecord, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	rec := record.NewDocumentRecord()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON object: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid JSON object key: %v", keyTok)
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", key, err)
		}

		rec.Set(key, normalizeNumber(value))
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}

	return rec, nil
}

// normalizeNumber maps a json.Number to int64 when it is integral and
// float64 otherwise, so integer and floating-point observations keep
// distinct type labels.
func normalizeNumber(v interface{}) interface{} {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}

	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return string(n)
}
