package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateAuthorRequest - POST /api/author
type CreateAuthorRequest struct {
	Name      string     `json:"name"`
	Biography *string    `json:"biography,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Biography, validation.Length(0, 5000)),
	)
}

// UpdateAuthorRequest - PUT /api/author/:id
// Full-field replace: every field always overwrites the stored value.
type UpdateAuthorRequest struct {
	Name      string     `json:"name"`
	Biography *string    `json:"biography,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Biography, validation.Length(0, 5000)),
	)
}

// AuthorResponse is the read DTO exposed at the API boundary.
type AuthorResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Biography *string    `json:"biography,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// ToResponse converts an Author entity to its read DTO.
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Biography: a.Biography,
		BirthDate: a.BirthDate,
	}
}

// ToEntity builds a new Author from the create request.
// The identifier is assigned here, server-side, and returned to the caller.
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		ID:        uuid.New(),
		Name:      r.Name,
		Biography: r.Biography,
		BirthDate: r.BirthDate,
	}
}

// ApplyTo overwrites the updatable fields of an existing Author.
func (r *UpdateAuthorRequest) ApplyTo(a *Author) {
	a.Name = r.Name
	a.Biography = r.Biography
	a.BirthDate = r.BirthDate
}
