package runtimeprofile

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store loads a decoded Profile into an in-memory sqlite database so a
// caller can run ad-hoc SQL against a captured profile (for example,
// "top 10 hottest paths across every procedure"). It models the
// single-threaded lifecycle of the runtime accumulator it reads from:
// it is built once from a fully decoded Profile and is not safe for
// concurrent writers.
type Store struct {
	db *sql.DB
}

// OpenStore loads p into a fresh in-memory database and returns a Store
// ready for Query.
func OpenStore(ctx context.Context, p *Profile) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("runtimeprofile: open store: %w", err)
	}

	const schema = `CREATE TABLE path_counts (
		proc_id    INTEGER NOT NULL,
		path_id    INTEGER NOT NULL,
		exec_count INTEGER NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("runtimeprofile: create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("runtimeprofile: begin load: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO path_counts (proc_id, path_id, exec_count) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		db.Close()
		return nil, fmt.Errorf("runtimeprofile: prepare load: %w", err)
	}
	for procID, entries := range p.Procedures {
		for _, e := range entries {
			if _, err := stmt.ExecContext(ctx, procID, e.PathID, e.ExecCount); err != nil {
				stmt.Close()
				tx.Rollback()
				db.Close()
				return nil, fmt.Errorf("runtimeprofile: load row: %w", err)
			}
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		db.Close()
		return nil, fmt.Errorf("runtimeprofile: commit load: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Query runs an arbitrary read-only SQL query against the path_counts
// table and returns the matching rows.
func (s *Store) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("runtimeprofile: query: %w", err)
	}
	return rows, nil
}

// TopPaths returns the n hottest (proc_id, path_id, exec_count) rows
// across every procedure, highest exec_count first.
func (s *Store) TopPaths(ctx context.Context, n int) ([]struct {
	ProcID    uint32
	PathID    uint64
	ExecCount uint32
}, error) {
	rows, err := s.Query(ctx, `SELECT proc_id, path_id, exec_count FROM path_counts ORDER BY exec_count DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []struct {
		ProcID    uint32
		PathID    uint64
		ExecCount uint32
	}
	for rows.Next() {
		var row struct {
			ProcID    uint32
			PathID    uint64
			ExecCount uint32
		}
		if err := rows.Scan(&row.ProcID, &row.PathID, &row.ExecCount); err != nil {
			return nil, fmt.Errorf("runtimeprofile: scan top path: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
