package repository

import (
	"context"

	"github.com/google/uuid"

	"bookrating-backend/internal/domains/category/model"
)

// Repository defines data access for categories.
type Repository interface {
	GetAll(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Create(ctx context.Context, cat *model.Category) error
	Update(ctx context.Context, cat *model.Category) error
	// Delete is a no-op when the id is absent.
	// Returns ErrCategoryInUse when books still reference the category.
	Delete(ctx context.Context, id uuid.UUID) error
}
