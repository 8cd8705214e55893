package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/funvibe/minml/internal/asm"
)

// Store persists assembled programs in SQLite, keyed by the program id
// the generator stamped. It is the concrete "file writer" collaborator
// behind the instruction sink: the pipeline stays agnostic about it.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS programs (
	id              TEXT PRIMARY KEY,
	source          TEXT NOT NULL,
	listing         TEXT NOT NULL,
	result_register TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_programs_source ON programs(source);
`

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record is one saved program.
type Record struct {
	ID             string
	Source         string
	Listing        string
	ResultRegister string
	CreatedAt      time.Time
}

// Save writes the program's listing under its id.
func (s *Store) Save(prog *asm.Program, source, resultRegister string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO programs (id, source, listing, result_register, created_at) VALUES (?, ?, ?, ?, ?)`,
		prog.ID.String(), source, prog.String(), resultRegister, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save program %s: %w", prog.ID, err)
	}
	return nil
}

// Lookup returns the most recently saved program for a source string, or
// nil when the source was never compiled.
func (s *Store) Lookup(source string) (*Record, error) {
	row := s.db.QueryRow(
		`SELECT id, source, listing, result_register, created_at FROM programs WHERE source = ? ORDER BY created_at DESC LIMIT 1`,
		source,
	)
	var rec Record
	err := row.Scan(&rec.ID, &rec.Source, &rec.Listing, &rec.ResultRegister, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup program: %w", err)
	}
	return &rec, nil
}

// List returns every saved program, newest first.
func (s *Store) List() ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, source, listing, result_register, created_at FROM programs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Listing, &rec.ResultRegister, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
