package objectstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// DuckDBStore persists VRS object blobs in a DuckDB table, giving a
// VRS pipeline a queryable, append-friendly durable cache across runs,
// keyed on a ga4gh identifier rather than a variant coordinate tuple.
type DuckDBStore struct {
	db *sql.DB
}

// OpenDuckDBStore opens or creates a DuckDB database at path. An empty
// path opens an in-memory database.
func OpenDuckDBStore(path string) (*DuckDBStore, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create object store directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &DuckDBStore{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *DuckDBStore) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS vrs_objects (
		id VARCHAR PRIMARY KEY,
		blob BLOB
	)`)
	return err
}

// Close closes the underlying database connection.
func (s *DuckDBStore) Close() error {
	return s.db.Close()
}

func (s *DuckDBStore) Put(ctx context.Context, id string, blob []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO vrs_objects (id, blob) VALUES (?, ?)
		ON CONFLICT (id) DO UPDATE SET blob = EXCLUDED.blob`, id, blob)
	return err
}

func (s *DuckDBStore) Get(ctx context.Context, id string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT blob FROM vrs_objects WHERE id = ?`, id)
	var blob []byte
	if err := row.Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound(id)
		}
		return nil, err
	}
	return blob, nil
}

func (s *DuckDBStore) Has(ctx context.Context, id string) (bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT 1 FROM vrs_objects WHERE id = ?`, id)
	var x int
	if err := row.Scan(&x); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
