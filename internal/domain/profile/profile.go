package profile

import (
	"context"
	"time"
)

// PersonalInfo is the single per-account profile record. Every field is a
// plain string; the address breakdown fields are each independently optional.
type PersonalInfo struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Country      string    `json:"country,omitempty"`
	City         string    `json:"city,omitempty"`
	Municipality string    `json:"municipality,omitempty"`
	Barangay     string    `json:"barangay,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Repository interface {
	// GetByOwner returns the stored record, or a zero-valued one when the
	// account has never saved a profile. Missing is not an error.
	GetByOwner(ctx context.Context, ownerID string) (*PersonalInfo, error)

	// Upsert overwrites the record wholesale. No partial-field merge.
	Upsert(ctx context.Context, ownerID string, info *PersonalInfo) error
}
