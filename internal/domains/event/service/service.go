package service

import (
	"context"

	"github.com/google/uuid"

	"bookrating-backend/internal/domains/event/model"
	"bookrating-backend/internal/domains/event/repository"
)

// Service is the business-logic contract for events.
type Service interface {
	GetAll(ctx context.Context) ([]model.EventResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.EventDetailResponse, error)
	Create(ctx context.Context, req *model.CreateEventRequest) (*model.EventResponse, error)
	AddBook(ctx context.Context, eventID, bookID uuid.UUID) error
	RemoveBook(ctx context.Context, eventID, bookID uuid.UUID) error
}

type eventService struct {
	repo repository.Repository
}

func NewEventService(repo repository.Repository) Service {
	return &eventService{repo: repo}
}

func (s *eventService) GetAll(ctx context.Context) ([]model.EventResponse, error) {
	events, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.EventResponse, len(events))
	for i := range events {
		responses[i] = *events[i].ToResponse()
	}
	return responses, nil
}

func (s *eventService) GetByID(ctx context.Context, id uuid.UUID) (*model.EventDetailResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrEventNotFound
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.GetBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	return e.ToDetailResponse(books), nil
}

func (s *eventService) Create(ctx context.Context, req *model.CreateEventRequest) (*model.EventResponse, error) {
	e := req.ToEntity()
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	return e.ToResponse(), nil
}

func (s *eventService) AddBook(ctx context.Context, eventID, bookID uuid.UUID) error {
	// Verify the event side first so an unknown event reads as 404
	// rather than a generic reference error.
	if _, err := s.repo.GetByID(ctx, eventID); err != nil {
		return err
	}

	return s.repo.AddBook(ctx, eventID, bookID)
}

func (s *eventService) RemoveBook(ctx context.Context, eventID, bookID uuid.UUID) error {
	return s.repo.RemoveBook(ctx, eventID, bookID)
}
