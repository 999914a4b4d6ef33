package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookrating-backend/internal/domains/publisher/model"
	"bookrating-backend/internal/domains/publisher/repository"
)

// Service is the business-logic contract for publishers.
type Service interface {
	GetAll(ctx context.Context) ([]model.PublisherResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.PublisherResponse, error)
	Create(ctx context.Context, req *model.CreatePublisherRequest) (*model.PublisherResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdatePublisherRequest) (*model.PublisherResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type publisherService struct {
	repo repository.Repository
}

func NewPublisherService(repo repository.Repository) Service {
	return &publisherService{repo: repo}
}

func (s *publisherService) GetAll(ctx context.Context) ([]model.PublisherResponse, error) {
	publishers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.PublisherResponse, len(publishers))
	for i := range publishers {
		responses[i] = *publishers[i].ToResponse()
	}
	return responses, nil
}

func (s *publisherService) GetByID(ctx context.Context, id uuid.UUID) (*model.PublisherResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrPublisherNotFound
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.ToResponse(), nil
}

func (s *publisherService) Create(ctx context.Context, req *model.CreatePublisherRequest) (*model.PublisherResponse, error) {
	p := req.ToEntity()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}
	return p.ToResponse(), nil
}

func (s *publisherService) Update(ctx context.Context, id uuid.UUID, req *model.UpdatePublisherRequest) (*model.PublisherResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(existing)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update publisher: %w", err)
	}
	return existing.ToResponse(), nil
}

func (s *publisherService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
