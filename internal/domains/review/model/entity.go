package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewRating is a single user's review of a book. A user may review
// the same book more than once; each submission stands on its own.
type ReviewRating struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Score      int       `json:"score" db:"score"`
	ReviewText *string   `json:"review_text" db:"review_text"`
	BookID     uuid.UUID `json:"book_id" db:"book_id"`
	UserID     string    `json:"user_id" db:"user_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	// Display fields resolved by JOIN on reads; never written.
	UserDisplayName *string `json:"user_display_name,omitempty" db:"user_display_name"`
	Username        *string `json:"username,omitempty" db:"username"`
	BookTitle       *string `json:"book_title,omitempty" db:"book_title"`
}
