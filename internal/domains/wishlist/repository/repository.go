package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bookrating-backend/internal/domains/wishlist/model"
	"bookrating-backend/pkg/database"
)

// Repository defines data access for wishlists and the wishlist_books join.
type Repository interface {
	// GetByUser lists a user's wishlists, newest first.
	GetByUser(ctx context.Context, userID string) ([]model.Wishlist, error)

	// GetByID returns ErrWishlistNotFound when absent. Ownership is not
	// checked here; the service layer decides who may see or touch it.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Wishlist, error)

	// Create inserts a new wishlist with its pre-assigned id.
	Create(ctx context.Context, w *model.Wishlist) error

	// Delete removes the wishlist and its book links. Absent ids are a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetBooks lists the books collected in a wishlist.
	GetBooks(ctx context.Context, wishlistID uuid.UUID) ([]model.BookRef, error)

	// AddBook collects a book; re-adding is a no-op. Returns
	// ErrInvalidReference when the book does not exist.
	AddBook(ctx context.Context, wishlistID, bookID uuid.UUID) error

	// RemoveBook drops a book from the wishlist; absent pairs are a no-op.
	RemoveBook(ctx context.Context, wishlistID, bookID uuid.UUID) error
}

type postgresRepository struct {
	db database.Querier
}

// Wishlists are per-user and read right after writes, so they skip the
// Redis layer the catalog repositories use.
func NewPostgresRepository(db database.Querier) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetByUser(ctx context.Context, userID string) ([]model.Wishlist, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, name, user_id, created_at, updated_at
        FROM wishlists
        WHERE user_id = $1
        ORDER BY created_at DESC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlists: %w", err)
	}
	defer rows.Close()

	wishlists := []model.Wishlist{}
	for rows.Next() {
		var w model.Wishlist
		if err := rows.Scan(&w.ID, &w.Name, &w.UserID, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist: %w", err)
		}
		wishlists = append(wishlists, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wishlists: %w", err)
	}

	return wishlists, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Wishlist, error) {
	var w model.Wishlist
	err := r.db.QueryRow(ctx, `
        SELECT id, name, user_id, created_at, updated_at
        FROM wishlists
        WHERE id = $1
    `, id).Scan(&w.ID, &w.Name, &w.UserID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWishlistNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist by id: %w", err)
	}

	return &w, nil
}

func (r *postgresRepository) Create(ctx context.Context, w *model.Wishlist) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO wishlists (id, name, user_id)
        VALUES ($1, $2, $3)
        RETURNING created_at, updated_at
    `, w.ID, w.Name, w.UserID).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create wishlist: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// wishlist_books rows go with it via ON DELETE CASCADE.
	_, err := r.db.Exec(ctx, `DELETE FROM wishlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetBooks(ctx context.Context, wishlistID uuid.UUID) ([]model.BookRef, error) {
	rows, err := r.db.Query(ctx, `
        SELECT b.id, b.title
        FROM books b
        JOIN wishlist_books wb ON wb.book_id = b.id
        WHERE wb.wishlist_id = $1
    `, wishlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist books: %w", err)
	}
	defer rows.Close()

	books := []model.BookRef{}
	for rows.Next() {
		var b model.BookRef
		if err := rows.Scan(&b.ID, &b.Title); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wishlist books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) AddBook(ctx context.Context, wishlistID, bookID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO wishlist_books (wishlist_id, book_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `, wishlistID, bookID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrInvalidReference
		}
		return fmt.Errorf("failed to add book to wishlist: %w", err)
	}

	return nil
}

func (r *postgresRepository) RemoveBook(ctx context.Context, wishlistID, bookID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        DELETE FROM wishlist_books WHERE wishlist_id = $1 AND book_id = $2
    `, wishlistID, bookID)
	if err != nil {
		return fmt.Errorf("failed to remove book from wishlist: %w", err)
	}

	return nil
}
