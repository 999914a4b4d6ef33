package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var ErrTagNotFound = errors.New("tag not found")

// Tag as persisted in the tags table. Tags apply to books (many-to-many).
type Tag struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type TagRequest struct {
	Name string `json:"name"`
}

func (r TagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

type TagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (t *Tag) ToResponse() *TagResponse {
	return &TagResponse{ID: t.ID, Name: t.Name}
}

func (r *TagRequest) ToEntity() *Tag {
	return &Tag{ID: uuid.New(), Name: r.Name}
}

func ToErrorCode(err error) string {
	if errors.Is(err, ErrTagNotFound) {
		return "TAG_NOT_FOUND"
	}
	return "INTERNAL_ERROR"
}

func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrTagNotFound) {
		return 404
	}
	return 500
}
