package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/renaldy/spaces-api/internal/domain"
)

// Timestamps are stored as RFC 3339 text; SQLite has no native time
// type. The fraction is fixed-width so lexicographic order of the column
// matches chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SpaceRepository handles space data access on SQLite
type SpaceRepository struct {
	db *DB
}

// NewSpaceRepository creates a new space repository
func NewSpaceRepository(db *DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

// Create inserts a new space record
func (r *SpaceRepository) Create(ctx context.Context, space *domain.Space) error {
	query := `
		INSERT INTO spaces (id, name, capacity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.SQL.ExecContext(ctx, query,
		space.ID.String(),
		space.Name,
		space.Capacity,
		space.CreatedAt.UTC().Format(timeLayout),
		space.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create space: %w", err)
	}

	return nil
}

// GetByID retrieves a space by ID. A missing record is (nil, nil).
func (r *SpaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Space, error) {
	query := `
		SELECT id, name, capacity, created_at, updated_at
		FROM spaces
		WHERE id = ?
	`

	space, err := scanSpace(r.db.SQL.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get space: %w", err)
	}

	return space, nil
}

// List retrieves all spaces, most recently created first
func (r *SpaceRepository) List(ctx context.Context) ([]domain.Space, error) {
	query := `
		SELECT id, name, capacity, created_at, updated_at
		FROM spaces
		ORDER BY created_at DESC
	`

	rows, err := r.db.SQL.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	defer rows.Close()

	var spaces []domain.Space
	for rows.Next() {
		space, err := scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan space: %w", err)
		}
		spaces = append(spaces, *space)
	}

	return spaces, rows.Err()
}

// Update applies the non-nil patch fields to an existing space
func (r *SpaceRepository) Update(ctx context.Context, id uuid.UUID, patch *domain.SpacePatch, updatedAt time.Time) error {
	query := `
		UPDATE spaces
		SET name = COALESCE(?, name),
		    capacity = COALESCE(?, capacity),
		    updated_at = ?
		WHERE id = ?
	`

	res, err := r.db.SQL.ExecContext(ctx, query,
		patch.Name,
		patch.Capacity,
		updatedAt.UTC().Format(timeLayout),
		id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update space: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update space: %w", err)
	}
	if affected == 0 {
		return domain.NotFoundError("space not found")
	}

	return nil
}

// Delete removes a space permanently
func (r *SpaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM spaces WHERE id = ?`

	res, err := r.db.SQL.ExecContext(ctx, query, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete space: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete space: %w", err)
	}
	if affected == 0 {
		return domain.NotFoundError("space not found")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSpace(row rowScanner) (*domain.Space, error) {
	var (
		space                domain.Space
		id, created, updated string
	)

	if err := row.Scan(&id, &space.Name, &space.Capacity, &created, &updated); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid space id %q: %w", id, err)
	}
	space.ID = parsed

	if space.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", created, err)
	}
	if space.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return nil, fmt.Errorf("invalid updated_at %q: %w", updated, err)
	}

	return &space, nil
}
