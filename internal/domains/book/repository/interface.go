package repository

import (
	"context"

	"github.com/google/uuid"

	"bookrating-backend/internal/domains/book/model"
)

// Repository defines data access for books and the book_tags join.
type Repository interface {
	// GetAll returns every book with author/publisher/category display
	// names resolved.
	GetAll(ctx context.Context) ([]model.Book, error)

	// GetByID returns ErrBookNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// Exists reports whether the book id is present, without fetching it.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Create inserts a new book with its pre-assigned id.
	// Returns ErrInvalidReference for unknown category/author/publisher,
	// ErrDuplicateISBN for an ISBN collision.
	Create(ctx context.Context, b *model.Book) error

	// Update replaces the updatable columns; ErrBookNotFound when absent.
	Update(ctx context.Context, b *model.Book) error

	// Delete removes the book. Absent ids are a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetTags lists the tags attached to a book.
	GetTags(ctx context.Context, bookID uuid.UUID) ([]model.TagRef, error)

	// AddTag attaches a tag; attaching an already-attached pair is a no-op.
	AddTag(ctx context.Context, bookID, tagID uuid.UUID) error

	// RemoveTag detaches a tag; detaching an absent pair is a no-op.
	RemoveTag(ctx context.Context, bookID, tagID uuid.UUID) error
}
