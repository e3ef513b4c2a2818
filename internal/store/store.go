// Package store persists grana's collections in a local SQLite database.
//
// Each collection (profile, expense ledger, goal set, category catalog)
// is an independent JSON document in a single key-value table. Reads of
// an absent or unparseable collection return a well-defined default so a
// damaged database never takes the app down with it.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store provides access to all persisted collections.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// read unmarshals the named collection into v. It reports false when the
// collection is absent or its stored document fails to parse; in both
// cases the caller substitutes the collection's default value.
func (s *Store) read(name string, v any) bool {
	var data string
	err := s.db.QueryRow("SELECT data FROM collections WHERE name = ?", name).Scan(&data)
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		// Corrupt document: fail closed with the default rather than
		// propagating a parse error.
		fmt.Fprintf(os.Stderr, "grana: collection %q is unreadable, using defaults\n", name)
		return false
	}
	return true
}

// write replaces the named collection with the JSON encoding of v.
func (s *Store) write(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`INSERT OR REPLACE INTO collections (name, data, updated_at)
		VALUES (?, ?, ?)`, name, string(data), now)
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Reset clears every collection in one transaction. The next read of
// each collection sees its default again.
func (s *Store) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, name := range []string{colUser, colExpenses, colGoals, colCategories} {
		if _, err := tx.Exec("DELETE FROM collections WHERE name = ?", name); err != nil {
			return fmt.Errorf("clearing %s: %w", name, err)
		}
	}
	return tx.Commit()
}
