package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/renaldy/spaces-api/internal/config"
)

// DB wraps a MySQL connection pool
type DB struct {
	SQL *sql.DB
}

// NewDB creates a new MySQL connection pool
func NewDB(ctx context.Context, cfg config.MySQLConfig) (*DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(int(cfg.MaxConns))
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{SQL: db}, nil
}

// EnsureSchema creates the spaces table when it does not exist yet.
// DATETIME(6) matches the microsecond precision the service writes.
func (db *DB) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS spaces (
			id CHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			capacity INT NOT NULL CHECK (capacity > 0),
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL
		)
	`
	if _, err := db.SQL.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.SQL != nil {
		db.SQL.Close()
	}
}

// Ping verifies database connectivity
func (db *DB) Ping(ctx context.Context) error {
	return db.SQL.PingContext(ctx)
}
