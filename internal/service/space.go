package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/renaldy/spaces-api/internal/domain"
)

// SpaceRepository is the storage contract the space service depends on.
// GetByID reports a missing record as (nil, nil); Update and Delete fail
// with a not-found error when the identifier matches no record.
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.Space) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Space, error)
	List(ctx context.Context) ([]domain.Space, error)
	Update(ctx context.Context, id uuid.UUID, patch *domain.SpacePatch, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SpaceService handles space operations
type SpaceService struct {
	spaceRepo SpaceRepository
}

// NewSpaceService creates a new space service
func NewSpaceService(spaceRepo SpaceRepository) *SpaceService {
	return &SpaceService{spaceRepo: spaceRepo}
}

// Create validates the input and persists a new space
func (s *SpaceService) Create(ctx context.Context, input domain.SpaceCreate) (*domain.SpaceDTO, error) {
	name, err := validName(input.Name)
	if err != nil {
		return nil, err
	}
	capacity, err := validCapacity(input.Capacity)
	if err != nil {
		return nil, err
	}

	now := timestamp()
	space := &domain.Space{
		ID:        uuid.New(),
		Name:      name,
		Capacity:  capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.spaceRepo.Create(ctx, space); err != nil {
		return nil, fmt.Errorf("failed to create space: %w", err)
	}

	dto := space.DTO()
	return &dto, nil
}

// GetByID retrieves a space by ID
func (s *SpaceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SpaceDTO, error) {
	if id == uuid.Nil {
		return nil, domain.ValidationError("id is required")
	}

	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get space: %w", err)
	}
	if space == nil {
		return nil, domain.NotFoundError("space not found")
	}

	dto := space.DTO()
	return &dto, nil
}

// List retrieves all spaces, most recently created first
func (s *SpaceService) List(ctx context.Context) ([]domain.SpaceDTO, error) {
	spaces, err := s.spaceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}

	dtos := make([]domain.SpaceDTO, 0, len(spaces))
	for i := range spaces {
		dtos = append(dtos, spaces[i].DTO())
	}
	return dtos, nil
}

// Update applies the provided fields to an existing space
func (s *SpaceService) Update(ctx context.Context, id uuid.UUID, input domain.SpaceUpdate) (*domain.SpaceDTO, error) {
	if id == uuid.Nil {
		return nil, domain.ValidationError("id is required")
	}
	if input.Name == nil && input.Capacity == nil {
		return nil, domain.ValidationError("no fields to update")
	}

	var patch domain.SpacePatch
	if input.Name != nil {
		name, err := validName(*input.Name)
		if err != nil {
			return nil, err
		}
		patch.Name = &name
	}
	if input.Capacity != nil {
		capacity, err := validCapacity(*input.Capacity)
		if err != nil {
			return nil, err
		}
		patch.Capacity = &capacity
	}

	if err := s.spaceRepo.Update(ctx, id, &patch, timestamp()); err != nil {
		return nil, err
	}

	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get space: %w", err)
	}
	if space == nil {
		return nil, domain.NotFoundError("space not found")
	}

	dto := space.DTO()
	return &dto, nil
}

// Delete permanently removes a space
func (s *SpaceService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.ValidationError("id is required")
	}
	return s.spaceRepo.Delete(ctx, id)
}

// timestamp truncates to microseconds, the finest precision every
// supported store column keeps, so a re-read record equals the one the
// create or update call returned.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ValidationError("name is required")
	}
	return name, nil
}

func validCapacity(capacity float64) (int, error) {
	// The upper bound keeps the int conversion from overflowing.
	if capacity <= 0 || capacity > math.MaxInt32 || capacity != math.Trunc(capacity) {
		return 0, domain.ValidationError("capacity must be a positive integer")
	}
	return int(capacity), nil
}
