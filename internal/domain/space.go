package domain

import (
	"time"

	"github.com/google/uuid"
)

// Space is the stored representation of a space record
type Space struct {
	ID        uuid.UUID
	Name      string
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SpaceDTO is the wire projection of a space. Timestamps are RFC 3339
// strings so the JSON shape is identical for every consumer.
type SpaceDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// DTO flattens the entity into its wire projection.
func (s *Space) DTO() SpaceDTO {
	return SpaceDTO{
		ID:        s.ID.String(),
		Name:      s.Name,
		Capacity:  s.Capacity,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// SpaceCreate represents space creation data. Capacity is decoded as a
// float so fractional input reaches the integrality check instead of
// being truncated by the decoder.
type SpaceCreate struct {
	Name     string  `json:"name" validate:"max=255"`
	Capacity float64 `json:"capacity"`
}

// SpaceUpdate represents partial space update data
type SpaceUpdate struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Capacity *float64 `json:"capacity,omitempty"`
}

// SpacePatch carries the validated fields a repository applies to an
// existing record. Nil fields keep their stored values.
type SpacePatch struct {
	Name     *string
	Capacity *int
}
