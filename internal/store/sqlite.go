// Package store persists a record of completed simulation runs. It
// wraps database/sql over github.com/mattn/go-sqlite3 behind a small
// typed API.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Run is one persisted row: the inputs and the outcome of a single
// bridge.RunScheduler call.
type Run struct {
	ID          string
	Algorithm   string
	Quantum     int
	ProcessN    int
	Makespan    int
	Overflowed  bool
	CreatedUnix int64
}

// Store is a thin handle over a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open creates (if necessary) and migrates the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite store %q: %w", path, err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	algorithm TEXT NOT NULL,
	quantum INTEGER NOT NULL,
	process_n INTEGER NOT NULL,
	makespan INTEGER NOT NULL,
	overflowed INTEGER NOT NULL,
	created_unix INTEGER NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating sqlite store %q: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle; cmd/scheduler-sim's run
// and serve commands defer it after Open.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun inserts one completed run. createdUnix is passed in rather than
// read from time.Now() so callers stay in control of the clock.
func (s *Store) SaveRun(r Run) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, algorithm, quantum, process_n, makespan, overflowed, created_unix)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Algorithm, r.Quantum, r.ProcessN, r.Makespan, r.Overflowed, r.CreatedUnix,
	)
	if err != nil {
		return fmt.Errorf("saving run %s: %w", r.ID, err)
	}
	return nil
}

// ListRuns returns the most recently created runs, newest first, bounded
// by limit.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if s == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, algorithm, quantum, process_n, makespan, overflowed, created_unix
		 FROM runs ORDER BY created_unix DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Algorithm, &r.Quantum, &r.ProcessN, &r.Makespan, &r.Overflowed, &r.CreatedUnix); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRun looks up a single run by its rs/xid-assigned ID.
func (s *Store) GetRun(id string) (Run, bool, error) {
	if s == nil {
		return Run{}, false, nil
	}
	var r Run
	err := s.db.QueryRow(
		`SELECT id, algorithm, quantum, process_n, makespan, overflowed, created_unix
		 FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.Algorithm, &r.Quantum, &r.ProcessN, &r.Makespan, &r.Overflowed, &r.CreatedUnix)
	if err == sql.ErrNoRows {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, fmt.Errorf("getting run %s: %w", id, err)
	}
	return r, true, nil
}

// Now is a thin seam so callers can stamp CreatedUnix without importing
// time directly.
func Now() int64 {
	return time.Now().Unix()
}
