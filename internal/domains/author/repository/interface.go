package repository

import (
	"context"

	"github.com/google/uuid"

	"bookrating-backend/internal/domains/author/model"
)

// Repository defines data access for authors.
// The abstraction keeps services testable against in-memory fakes.
type Repository interface {
	// GetAll returns every author, store-default order.
	GetAll(ctx context.Context) ([]model.Author, error)

	// GetByID returns ErrAuthorNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// Create inserts a new author with its pre-assigned id.
	Create(ctx context.Context, a *model.Author) error

	// Update replaces the updatable columns.
	// Returns ErrAuthorNotFound when the row does not exist.
	Update(ctx context.Context, a *model.Author) error

	// Delete removes the author. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
