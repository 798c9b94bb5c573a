package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/renaldy/spaces-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSpaceService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Space")).Return(nil)
		svc := NewSpaceService(repo)

		dto, err := svc.Create(ctx, domain.SpaceCreate{Name: "Room A", Capacity: 10})
		require.NoError(t, err)
		assert.NotEmpty(t, dto.ID)
		assert.Equal(t, "Room A", dto.Name)
		assert.Equal(t, 10, dto.Capacity)
		assert.Equal(t, dto.CreatedAt, dto.UpdatedAt)

		repo.AssertExpectations(t)
	})

	t.Run("trims name", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(s *domain.Space) bool {
			return s.Name == "Room A"
		})).Return(nil)
		svc := NewSpaceService(repo)

		dto, err := svc.Create(ctx, domain.SpaceCreate{Name: "  Room A  ", Capacity: 3})
		require.NoError(t, err)
		assert.Equal(t, "Room A", dto.Name)

		repo.AssertExpectations(t)
	})

	t.Run("blank name", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		svc := NewSpaceService(repo)

		_, err := svc.Create(ctx, domain.SpaceCreate{Name: "   ", Capacity: 5})
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
		assert.EqualError(t, err, "name is required")

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-positive capacity", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		svc := NewSpaceService(repo)

		for _, capacity := range []float64{0, -1, -100} {
			_, err := svc.Create(ctx, domain.SpaceCreate{Name: "X", Capacity: capacity})
			require.Error(t, err)
			assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
			assert.EqualError(t, err, "capacity must be a positive integer")
		}

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("capacity beyond integer range", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		svc := NewSpaceService(repo)

		// Integral and positive, but overflows the persisted int.
		_, err := svc.Create(ctx, domain.SpaceCreate{Name: "Hangar", Capacity: 1e19})
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
		assert.EqualError(t, err, "capacity must be a positive integer")

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("timestamps carry at most microsecond precision", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Space")).Return(nil)
		svc := NewSpaceService(repo)

		dto, err := svc.Create(ctx, domain.SpaceCreate{Name: "Room A", Capacity: 10})
		require.NoError(t, err)

		created, err := time.Parse(time.RFC3339Nano, dto.CreatedAt)
		require.NoError(t, err)
		assert.Zero(t, created.Nanosecond()%1000,
			"sub-microsecond digits would be lost by the store columns")
	})

	t.Run("fractional capacity", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		svc := NewSpaceService(repo)

		_, err := svc.Create(ctx, domain.SpaceCreate{Name: "X", Capacity: 2.5})
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))
		svc := NewSpaceService(repo)

		_, err := svc.Create(ctx, domain.SpaceCreate{Name: "X", Capacity: 1})
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindInternal, domain.KindOf(err))
	})
}

func TestSpaceService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		now := time.Now().UTC()
		space := &domain.Space{
			ID:        uuid.New(),
			Name:      "Room A",
			Capacity:  10,
			CreatedAt: now,
			UpdatedAt: now,
		}
		repo := new(MockSpaceRepository)
		repo.On("GetByID", ctx, space.ID).Return(space, nil)
		svc := NewSpaceService(repo)

		dto, err := svc.GetByID(ctx, space.ID)
		require.NoError(t, err)
		assert.Equal(t, space.ID.String(), dto.ID)
		assert.Equal(t, "Room A", dto.Name)
	})

	t.Run("missing id", func(t *testing.T) {
		svc := NewSpaceService(new(MockSpaceRepository))

		_, err := svc.GetByID(ctx, uuid.Nil)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		repo.On("GetByID", ctx, mock.Anything).Return(nil, nil)
		svc := NewSpaceService(repo)

		_, err := svc.GetByID(ctx, uuid.New())
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindNotFound, domain.KindOf(err))
		assert.EqualError(t, err, "space not found")
	})
}

func TestSpaceService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("maps entities to DTOs", func(t *testing.T) {
		now := time.Now().UTC()
		spaces := []domain.Space{
			{ID: uuid.New(), Name: "B", Capacity: 2, CreatedAt: now, UpdatedAt: now},
			{ID: uuid.New(), Name: "A", Capacity: 1, CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)},
		}
		repo := new(MockSpaceRepository)
		repo.On("List", ctx).Return(spaces, nil)
		svc := NewSpaceService(repo)

		dtos, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, dtos, 2)
		assert.Equal(t, "B", dtos[0].Name)
		assert.Equal(t, "A", dtos[1].Name)
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		repo.On("List", ctx).Return([]domain.Space{}, nil)
		svc := NewSpaceService(repo)

		dtos, err := svc.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, dtos)
		assert.Empty(t, dtos)
	})
}

func TestSpaceService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("capacity only", func(t *testing.T) {
		id := uuid.New()
		created := time.Now().UTC().Add(-time.Hour)
		updated := &domain.Space{
			ID:        id,
			Name:      "Room A",
			Capacity:  20,
			CreatedAt: created,
			UpdatedAt: time.Now().UTC(),
		}

		repo := new(MockSpaceRepository)
		repo.On("Update", ctx, id, mock.MatchedBy(func(p *domain.SpacePatch) bool {
			return p.Name == nil && p.Capacity != nil && *p.Capacity == 20
		}), mock.AnythingOfType("time.Time")).Return(nil)
		repo.On("GetByID", ctx, id).Return(updated, nil)
		svc := NewSpaceService(repo)

		capacity := 20.0
		dto, err := svc.Update(ctx, id, domain.SpaceUpdate{Capacity: &capacity})
		require.NoError(t, err)
		assert.Equal(t, 20, dto.Capacity)
		assert.Equal(t, "Room A", dto.Name)
		assert.NotEqual(t, dto.CreatedAt, dto.UpdatedAt)

		repo.AssertExpectations(t)
	})

	t.Run("no fields", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		svc := NewSpaceService(repo)

		_, err := svc.Update(ctx, uuid.New(), domain.SpaceUpdate{})
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
		assert.EqualError(t, err, "no fields to update")

		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid fields rejected before store access", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		svc := NewSpaceService(repo)

		blank := "   "
		_, err := svc.Update(ctx, uuid.New(), domain.SpaceUpdate{Name: &blank})
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))

		negative := -3.0
		_, err = svc.Update(ctx, uuid.New(), domain.SpaceUpdate{Capacity: &negative})
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))

		overflowing := 1e19
		_, err = svc.Update(ctx, uuid.New(), domain.SpaceUpdate{Capacity: &overflowing})
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))

		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		repo.On("Update", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(domain.NotFoundError("space not found"))
		svc := NewSpaceService(repo)

		name := "Room B"
		_, err := svc.Update(ctx, uuid.New(), domain.SpaceUpdate{Name: &name})
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindNotFound, domain.KindOf(err))
	})
}

func TestSpaceService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockSpaceRepository)
		repo.On("Delete", ctx, id).Return(nil)
		svc := NewSpaceService(repo)

		require.NoError(t, svc.Delete(ctx, id))
		repo.AssertExpectations(t)
	})

	t.Run("missing id", func(t *testing.T) {
		svc := NewSpaceService(new(MockSpaceRepository))

		err := svc.Delete(ctx, uuid.Nil)
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindValidation, domain.KindOf(err))
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockSpaceRepository)
		repo.On("Delete", ctx, mock.Anything).Return(domain.NotFoundError("space not found"))
		svc := NewSpaceService(repo)

		err := svc.Delete(ctx, uuid.New())
		require.Error(t, err)
		assert.Equal(t, domain.ErrorKindNotFound, domain.KindOf(err))
	})
}
