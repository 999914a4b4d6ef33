package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookrating-backend/internal/domains/author/model"
	"bookrating-backend/internal/domains/author/repository"
)

type authorService struct {
	repo repository.Repository
}

// NewAuthorService creates an author service over the given repository.
func NewAuthorService(repo repository.Repository) Service {
	return &authorService{repo: repo}
}

func (s *authorService) GetAll(ctx context.Context) ([]model.AuthorResponse, error) {
	authors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.AuthorResponse, len(authors))
	for i := range authors {
		responses[i] = *authors[i].ToResponse()
	}
	return responses, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.ToResponse(), nil
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.AuthorResponse, error) {
	a := req.ToEntity()
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return a.ToResponse(), nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.AuthorResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err // ErrAuthorNotFound surfaces as 404
	}

	req.ApplyTo(existing)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return existing.ToResponse(), nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	// Deleting an absent author is a silent no-op.
	return s.repo.Delete(ctx, id)
}
