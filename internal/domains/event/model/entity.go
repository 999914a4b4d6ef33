package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is a reading event (book fair, signing, reading club session)
// that books can be attached to.
type Event struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description" db:"description"`
	StartDate   time.Time  `json:"start_date" db:"start_date"`
	EndDate     *time.Time `json:"end_date" db:"end_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// IsOngoing reports whether the event covers the given instant.
func (e *Event) IsOngoing(at time.Time) bool {
	if at.Before(e.StartDate) {
		return false
	}
	return e.EndDate == nil || !at.After(*e.EndDate)
}
