package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateEventRequest - POST /api/event
type CreateEventRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

func (r CreateEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.StartDate, validation.Required),
		validation.Field(&r.EndDate, validation.By(r.endAfterStart)),
	)
}

func (r CreateEventRequest) endAfterStart(value interface{}) error {
	end, _ := value.(*time.Time)
	if end != nil && end.Before(r.StartDate) {
		return validation.NewError("validation_end_before_start", "end date must not precede start date")
	}
	return nil
}

type EventResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Ongoing     bool       `json:"ongoing"`
}

// EventDetailResponse additionally lists the books attached to the event.
type EventDetailResponse struct {
	EventResponse
	Books []BookRef `json:"books"`
}

// BookRef is the minimal book projection embedded in event reads.
type BookRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

func (e *Event) ToResponse() *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Ongoing:     e.IsOngoing(time.Now()),
	}
}

func (e *Event) ToDetailResponse(books []BookRef) *EventDetailResponse {
	if books == nil {
		books = []BookRef{}
	}
	return &EventDetailResponse{
		EventResponse: *e.ToResponse(),
		Books:         books,
	}
}

func (r *CreateEventRequest) ToEntity() *Event {
	return &Event{
		ID:          uuid.New(),
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}
