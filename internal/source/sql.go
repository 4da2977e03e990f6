package source

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/dbsmedya/goprofile/internal/config"
	"github.com/dbsmedya/goprofile/internal/record"
)

// SQLSource streams the rows of one query result as records. Each row
// becomes a record whose properties are the result columns in declaration
// order.
type SQLSource struct {
	db      *sql.DB
	rows    *sql.Rows
	columns []string
	ownsDB  bool
	done    bool
}

// OpenSQLSource connects to MySQL using the source configuration, runs the
// configured query and returns a streaming source over its rows. The
// connection is owned by the source and closed with it.
func OpenSQLSource(ctx context.Context, cfg *config.SourceConfig) (*SQLSource, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	if cfg.MaxConnections > 0 {
		db.SetMaxOpenConns(cfg.MaxConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	db.SetConnMaxLifetime(10 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	src, err := NewSQLSource(ctx, db, cfg.Query)
	if err != nil {
		db.Close()
		return nil, err
	}
	src.ownsDB = true
	return src, nil
}

// NewSQLSource runs query against an existing database handle and returns
// a streaming source over its rows. The handle stays owned by the caller.
func NewSQLSource(ctx context.Context, db *sql.DB, query string) (*SQLSource, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}

	columns, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	return &SQLSource{
		db:      db,
		rows:    rows,
		columns: columns,
	}, nil
}

// Next scans the next row into a record. Returns io.EOF when the result
// set is exhausted. An iteration error (e.g. a connection dropped
// mid-result-set) is terminal: it is returned exactly once, and every
// later call returns io.EOF so callers looping until EOF always
// terminate.
func (s *SQLSource) Next() (record.Record, error) {
	if s.done {
		return nil, io.EOF
	}

	if !s.rows.Next() {
		s.done = true
		if err := s.rows.Err(); err != nil {
			return nil, fmt.Errorf("error iterating rows: %w", err)
		}
		return nil, io.EOF
	}

	values := make([]interface{}, len(s.columns))
	ptrs := make([]interface{}, len(s.columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	if err := s.rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}

	rec := record.NewDocumentRecord()
	for i, col := range s.columns {
		v := values[i]
		// MySQL driver returns []byte for strings/blobs
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		rec.Set(col, v)
	}

	return rec, nil
}

// Close releases the result set, and the connection when this source
// opened it.
func (s *SQLSource) Close() error {
	err := s.rows.Close()
	if s.ownsDB {
		if closeErr := s.db.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
