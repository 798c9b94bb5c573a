package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/renaldy/spaces-api/internal/config"
	_ "modernc.org/sqlite"
)

// DB wraps an embedded SQLite database handle
type DB struct {
	SQL *sql.DB
}

// NewDB opens the SQLite database file, creating it when absent
func NewDB(ctx context.Context, cfg config.SQLiteConfig) (*DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database file path is required")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", cfg.Path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{SQL: db}, nil
}

// EnsureSchema creates the spaces table when it does not exist yet.
// Embedded deployments have no migration runner, so the server creates
// its own schema on startup.
func (db *DB) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS spaces (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			capacity INTEGER NOT NULL CHECK (capacity > 0),
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`
	if _, err := db.SQL.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database handle
func (db *DB) Close() {
	if db.SQL != nil {
		db.SQL.Close()
	}
}

// Ping verifies database connectivity
func (db *DB) Ping(ctx context.Context) error {
	return db.SQL.PingContext(ctx)
}
