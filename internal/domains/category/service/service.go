package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookrating-backend/internal/domains/category/model"
	"bookrating-backend/internal/domains/category/repository"
)

// Service is the business-logic contract for categories.
type Service interface {
	GetAll(ctx context.Context) ([]model.CategoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.CategoryResponse, error)
	Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateCategoryRequest) (*model.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.Repository
}

func NewCategoryService(repo repository.Repository) Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetAll(ctx context.Context) ([]model.CategoryResponse, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *categories[i].ToResponse()
	}
	return responses, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*model.CategoryResponse, error) {
	if id == uuid.Nil {
		return nil, model.ErrCategoryNotFound
	}

	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return cat.ToResponse(), nil
}

func (s *categoryService) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryResponse, error) {
	cat := req.ToEntity()
	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return cat.ToResponse(), nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateCategoryRequest) (*model.CategoryResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(existing)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return existing.ToResponse(), nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
