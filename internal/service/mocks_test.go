package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/renaldy/spaces-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockSpaceRepository mocks the SpaceRepository interface
type MockSpaceRepository struct {
	mock.Mock
}

func (m *MockSpaceRepository) Create(ctx context.Context, space *domain.Space) error {
	args := m.Called(ctx, space)
	return args.Error(0)
}

func (m *MockSpaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Space, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Space), args.Error(1)
}

func (m *MockSpaceRepository) List(ctx context.Context) ([]domain.Space, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Space), args.Error(1)
}

func (m *MockSpaceRepository) Update(ctx context.Context, id uuid.UUID, patch *domain.SpacePatch, updatedAt time.Time) error {
	args := m.Called(ctx, id, patch, updatedAt)
	return args.Error(0)
}

func (m *MockSpaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
