package model

import (
	"time"

	"github.com/google/uuid"
)

// Author as persisted in the authors table.
type Author struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Biography *string    `json:"biography" db:"biography"`
	BirthDate *time.Time `json:"birth_date" db:"birth_date"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// HasBiography checks if the author has a non-empty biography.
func (a *Author) HasBiography() bool {
	return a.Biography != nil && *a.Biography != ""
}
