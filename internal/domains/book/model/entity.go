package model

import (
	"time"

	"github.com/google/uuid"
)

// Book as persisted in the books table.
// Author and publisher are optional references; category is required.
type Book struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	ISBN          string     `json:"isbn" db:"isbn"`
	Description   *string    `json:"description" db:"description"`
	PublishedDate *time.Time `json:"published_date" db:"published_date"`
	CoverImageURL *string    `json:"cover_image_url" db:"cover_image_url"`
	CategoryID    uuid.UUID  `json:"category_id" db:"category_id"`
	AuthorID      *uuid.UUID `json:"author_id" db:"author_id"`
	PublisherID   *uuid.UUID `json:"publisher_id" db:"publisher_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`

	// Display names resolved by LEFT JOIN on reads; never written.
	// JSON tags matter: the Redis cache stores the whole entity.
	AuthorName    *string `json:"author_name,omitempty" db:"author_name"`
	PublisherName *string `json:"publisher_name,omitempty" db:"publisher_name"`
	CategoryName  *string `json:"category_name,omitempty" db:"category_name"`
}
