// Package store selects a concrete space repository by configured driver.
package store

import (
	"context"
	"fmt"

	"github.com/renaldy/spaces-api/internal/config"
	"github.com/renaldy/spaces-api/internal/repository/mysql"
	"github.com/renaldy/spaces-api/internal/repository/postgres"
	"github.com/renaldy/spaces-api/internal/repository/sqlite"
	"github.com/renaldy/spaces-api/internal/service"
)

// Store is an opened backing database plus the repository bound to it.
type Store struct {
	Spaces service.SpaceRepository

	ping  func(ctx context.Context) error
	close func()
}

// Open connects to the configured database driver
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	switch cfg.Driver {
	case "postgres":
		db, err := postgres.NewDB(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return &Store{
			Spaces: postgres.NewSpaceRepository(db),
			ping:   db.Ping,
			close:  db.Close,
		}, nil

	case "sqlite":
		db, err := sqlite.NewDB(ctx, cfg.SQLite)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &Store{
			Spaces: sqlite.NewSpaceRepository(db),
			ping:   db.Ping,
			close:  db.Close,
		}, nil

	case "mysql":
		db, err := mysql.NewDB(ctx, cfg.MySQL)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &Store{
			Spaces: mysql.NewSpaceRepository(db),
			ping:   db.Ping,
			close:  db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Ping verifies connectivity to the backing database
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the backing database
func (s *Store) Close() {
	s.close()
}
