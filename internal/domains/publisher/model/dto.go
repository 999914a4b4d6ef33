package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// CreatePublisherRequest - POST /api/publisher
type CreatePublisherRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
}

func (r CreatePublisherRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Website, is.URL),
	)
}

// UpdatePublisherRequest - PUT /api/publisher/:id
type UpdatePublisherRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
}

func (r UpdatePublisherRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Website, is.URL),
	)
}

type PublisherResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Website     *string   `json:"website,omitempty"`
}

func (p *Publisher) ToResponse() *PublisherResponse {
	return &PublisherResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Website:     p.Website,
	}
}

func (r *CreatePublisherRequest) ToEntity() *Publisher {
	return &Publisher{
		ID:          uuid.New(),
		Name:        r.Name,
		Description: r.Description,
		Website:     r.Website,
	}
}

func (r *UpdatePublisherRequest) ApplyTo(p *Publisher) {
	p.Name = r.Name
	p.Description = r.Description
	p.Website = r.Website
}
