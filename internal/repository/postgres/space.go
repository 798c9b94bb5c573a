package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/renaldy/spaces-api/internal/domain"
)

// SpaceRepository handles space data access
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
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		space.ID,
		space.Name,
		space.Capacity,
		space.CreatedAt,
		space.UpdatedAt,
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
		WHERE id = $1
	`

	var space domain.Space
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&space.ID,
		&space.Name,
		&space.Capacity,
		&space.CreatedAt,
		&space.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get space: %w", err)
	}

	return &space, nil
}

// List retrieves all spaces, most recently created first
func (r *SpaceRepository) List(ctx context.Context) ([]domain.Space, error) {
	query := `
		SELECT id, name, capacity, created_at, updated_at
		FROM spaces
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	defer rows.Close()

	var spaces []domain.Space
	for rows.Next() {
		var space domain.Space
		if err := rows.Scan(
			&space.ID,
			&space.Name,
			&space.Capacity,
			&space.CreatedAt,
			&space.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan space: %w", err)
		}
		spaces = append(spaces, space)
	}

	return spaces, rows.Err()
}

// Update applies the non-nil patch fields to an existing space
func (r *SpaceRepository) Update(ctx context.Context, id uuid.UUID, patch *domain.SpacePatch, updatedAt time.Time) error {
	query := `
		UPDATE spaces
		SET name = COALESCE($2, name),
		    capacity = COALESCE($3, capacity),
		    updated_at = $4
		WHERE id = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query, id, patch.Name, patch.Capacity, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update space: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundError("space not found")
	}

	return nil
}

// Delete removes a space permanently
func (r *SpaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM spaces WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete space: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundError("space not found")
	}

	return nil
}
