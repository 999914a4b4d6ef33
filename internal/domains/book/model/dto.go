package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// CreateBookRequest - POST /api/book
type CreateBookRequest struct {
	Title         string     `json:"title"`
	ISBN          string     `json:"isbn"`
	Description   *string    `json:"description,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	CoverImageURL *string    `json:"cover_image_url,omitempty"`
	CategoryID    uuid.UUID  `json:"category_id"`
	AuthorID      *uuid.UUID `json:"author_id,omitempty"`
	PublisherID   *uuid.UUID `json:"publisher_id,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.ISBN, validation.Required, validation.Length(1, 32)),
		validation.Field(&r.CoverImageURL, is.URL),
		validation.Field(&r.CategoryID, validation.By(requiredUUID)),
	)
}

// requiredUUID rejects the zero uuid. validation.Required cannot be
// used here: a [16]byte array is never "empty" to ozzo.
func requiredUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.ErrRequired
	}
	return nil
}

// UpdateBookRequest - PUT /api/book/:id
// Full replace of the allowed-field subset.
type UpdateBookRequest struct {
	Title         string     `json:"title"`
	ISBN          string     `json:"isbn"`
	Description   *string    `json:"description,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	CoverImageURL *string    `json:"cover_image_url,omitempty"`
	CategoryID    uuid.UUID  `json:"category_id"`
	AuthorID      *uuid.UUID `json:"author_id,omitempty"`
	PublisherID   *uuid.UUID `json:"publisher_id,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.ISBN, validation.Required, validation.Length(1, 32)),
		validation.Field(&r.CoverImageURL, is.URL),
		validation.Field(&r.CategoryID, validation.By(requiredUUID)),
	)
}

// BookResponse carries display names for the UI alongside the raw ids
// so clients can render lists without extra lookups.
type BookResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	ISBN          string     `json:"isbn"`
	Description   *string    `json:"description,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	CoverImageURL *string    `json:"cover_image_url,omitempty"`
	AuthorName    *string    `json:"author_name,omitempty"`
	PublisherName *string    `json:"publisher_name,omitempty"`
	CategoryName  *string    `json:"category_name,omitempty"`
	CategoryID    uuid.UUID  `json:"category_id"`
	AuthorID      *uuid.UUID `json:"author_id,omitempty"`
	PublisherID   *uuid.UUID `json:"publisher_id,omitempty"`
}

// BookDetailResponse additionally lists the book's tags.
type BookDetailResponse struct {
	BookResponse
	Tags []TagRef `json:"tags"`
}

// TagRef is the minimal tag projection embedded in book reads.
type TagRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		ISBN:          b.ISBN,
		Description:   b.Description,
		PublishedDate: b.PublishedDate,
		CoverImageURL: b.CoverImageURL,
		AuthorName:    b.AuthorName,
		PublisherName: b.PublisherName,
		CategoryName:  b.CategoryName,
		CategoryID:    b.CategoryID,
		AuthorID:      b.AuthorID,
		PublisherID:   b.PublisherID,
	}
}

func (b *Book) ToDetailResponse(tags []TagRef) *BookDetailResponse {
	if tags == nil {
		tags = []TagRef{}
	}
	return &BookDetailResponse{
		BookResponse: *b.ToResponse(),
		Tags:         tags,
	}
}

func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		ID:            uuid.New(),
		Title:         r.Title,
		ISBN:          r.ISBN,
		Description:   r.Description,
		PublishedDate: r.PublishedDate,
		CoverImageURL: r.CoverImageURL,
		CategoryID:    r.CategoryID,
		AuthorID:      r.AuthorID,
		PublisherID:   r.PublisherID,
	}
}

func (r *UpdateBookRequest) ApplyTo(b *Book) {
	b.Title = r.Title
	b.ISBN = r.ISBN
	b.Description = r.Description
	b.PublishedDate = r.PublishedDate
	b.CoverImageURL = r.CoverImageURL
	b.CategoryID = r.CategoryID
	b.AuthorID = r.AuthorID
	b.PublisherID = r.PublisherID
}
