package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookrating-backend/internal/domains/tag/model"
	"bookrating-backend/internal/domains/tag/repository"
)

// Service is the business-logic contract for tags.
type Service interface {
	GetAll(ctx context.Context) ([]model.TagResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.TagResponse, error)
	Create(ctx context.Context, req *model.TagRequest) (*model.TagResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *model.TagRequest) (*model.TagResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tagService struct {
	repo repository.Repository
}

func NewTagService(repo repository.Repository) Service {
	return &tagService{repo: repo}
}

func (s *tagService) GetAll(ctx context.Context) ([]model.TagResponse, error) {
	tags, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.TagResponse, len(tags))
	for i := range tags {
		responses[i] = *tags[i].ToResponse()
	}
	return responses, nil
}

func (s *tagService) GetByID(ctx context.Context, id uuid.UUID) (*model.TagResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrTagNotFound
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return t.ToResponse(), nil
}

func (s *tagService) Create(ctx context.Context, req *model.TagRequest) (*model.TagResponse, error) {
	t := req.ToEntity()
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return t.ToResponse(), nil
}

func (s *tagService) Update(ctx context.Context, id uuid.UUID, req *model.TagRequest) (*model.TagResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return existing.ToResponse(), nil
}

func (s *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
