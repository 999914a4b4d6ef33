package service

import (
	"context"

	"github.com/google/uuid"

	"bookrating-backend/internal/domains/book/model"
	"bookrating-backend/internal/domains/book/repository"
)

// Service is the business-logic contract for books.
type Service interface {
	GetAll(ctx context.Context) ([]model.BookResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.BookDetailResponse, error)
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.BookResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.BookResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddTag(ctx context.Context, bookID, tagID uuid.UUID) error
	RemoveTag(ctx context.Context, bookID, tagID uuid.UUID) error
}

type bookService struct {
	repo repository.Repository
}

func NewBookService(repo repository.Repository) Service {
	return &bookService{repo: repo}
}

func (s *bookService) GetAll(ctx context.Context) ([]model.BookResponse, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.BookResponse, len(books))
	for i := range books {
		responses[i] = *books[i].ToResponse()
	}
	return responses, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*model.BookDetailResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrBookNotFound
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tags, err := s.repo.GetTags(ctx, id)
	if err != nil {
		return nil, err
	}

	return b.ToDetailResponse(tags), nil
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.BookResponse, error) {
	b := req.ToEntity()
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// Re-read so the response carries the resolved display names.
	created, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.BookResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(existing)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *bookService) AddTag(ctx context.Context, bookID, tagID uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, bookID)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrBookNotFound
	}

	return s.repo.AddTag(ctx, bookID, tagID)
}

func (s *bookService) RemoveTag(ctx context.Context, bookID, tagID uuid.UUID) error {
	return s.repo.RemoveTag(ctx, bookID, tagID)
}
