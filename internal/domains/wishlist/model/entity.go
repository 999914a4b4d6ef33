package model

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is a named, user-owned collection of books.
type Wishlist struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsOwnedBy reports whether the wishlist belongs to the given subject.
func (w *Wishlist) IsOwnedBy(userID string) bool {
	return w.UserID == userID
}
