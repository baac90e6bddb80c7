// Package snippets persists named prompt-math expressions in a local
// SQLite database so authors can save and recall working expressions by
// name. This is glue around the expression core; the core itself never
// touches storage.
package snippets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// ErrNotFound is returned when a snippet name does not exist.
var ErrNotFound = errors.New("snippet not found")

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS snippets (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    code        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Snippet is one saved expression.
type Snippet struct {
	ID          string
	Name        string
	Code        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Store is a SQLite-backed snippet library in WAL mode.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the snippet database at dbPath, enables WAL mode
// and busy timeout, and creates the schema if needed.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("snippets: open database: %w", err)
	}

	// One connection: SQLite has a single writer, and one connection keeps
	// PRAGMA setup simple while WAL still serves external readers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("snippets: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("snippets: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("snippets: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts a snippet by name and returns its ID.
func (s *Store) Save(ctx context.Context, name, code, description string) (string, error) {
	const q = `
		INSERT INTO snippets (id, name, code, description)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			code        = excluded.code,
			description = excluded.description,
			updated_at  = CURRENT_TIMESTAMP
	`
	id := uuid.NewString()
	if _, err := s.db.ExecContext(ctx, q, id, name, code, description); err != nil {
		return "", fmt.Errorf("snippets: save %q: %w", name, err)
	}
	// On upsert the original row keeps its ID; read it back.
	var actual string
	if err := s.db.QueryRowContext(ctx, "SELECT id FROM snippets WHERE name = ?", name).Scan(&actual); err != nil {
		return "", fmt.Errorf("snippets: read back %q: %w", name, err)
	}
	return actual, nil
}

// Get returns the snippet stored under name.
func (s *Store) Get(ctx context.Context, name string) (Snippet, error) {
	const q = `
		SELECT id, name, code, description, created_at, updated_at
		FROM snippets WHERE name = ?
	`
	var sn Snippet
	err := s.db.QueryRowContext(ctx, q, name).Scan(
		&sn.ID, &sn.Name, &sn.Code, &sn.Description, &sn.CreatedAt, &sn.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Snippet{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return Snippet{}, fmt.Errorf("snippets: get %q: %w", name, err)
	}
	return sn, nil
}

// List returns every snippet ordered by name.
func (s *Store) List(ctx context.Context) ([]Snippet, error) {
	const q = `
		SELECT id, name, code, description, created_at, updated_at
		FROM snippets ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("snippets: list: %w", err)
	}
	defer rows.Close()

	var out []Snippet
	for rows.Next() {
		var sn Snippet
		if err := rows.Scan(&sn.ID, &sn.Name, &sn.Code, &sn.Description, &sn.CreatedAt, &sn.UpdatedAt); err != nil {
			return nil, fmt.Errorf("snippets: scan: %w", err)
		}
		out = append(out, sn)
	}
	return out, rows.Err()
}

// Delete removes the snippet stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM snippets WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("snippets: delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("snippets: delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}
