package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"bookrating-backend/internal/domains/review/model"
	"bookrating-backend/pkg/database"
)

// Repository defines data access for review ratings.
type Repository interface {
	// GetByBook lists a book's reviews, newest first, with reviewer
	// names and the book title resolved.
	GetByBook(ctx context.Context, bookID uuid.UUID) ([]model.ReviewRating, error)

	// Create inserts a review with its pre-assigned id. Returns
	// ErrInvalidReference when the book or user does not exist.
	Create(ctx context.Context, rv *model.ReviewRating) error

	// GetScoresByBook returns just the scores for a book, for
	// aggregate computations.
	GetScoresByBook(ctx context.Context, bookID uuid.UUID) ([]int, error)

	// WithQuerier rebinds the repository to another Querier, typically
	// a transaction, so review writes can join a larger unit of work.
	WithQuerier(q database.Querier) Repository
}

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithQuerier(q database.Querier) Repository {
	return &postgresRepository{db: q}
}

func (r *postgresRepository) GetByBook(ctx context.Context, bookID uuid.UUID) ([]model.ReviewRating, error) {
	rows, err := r.db.Query(ctx, `
        SELECT rv.id, rv.score, rv.review_text, rv.book_id, rv.user_id, rv.created_at,
               u.display_name AS user_display_name, u.username, b.title AS book_title
        FROM review_ratings rv
        JOIN users u ON u.id = rv.user_id
        JOIN books b ON b.id = rv.book_id
        WHERE rv.book_id = $1
        ORDER BY rv.created_at DESC
    `, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.ReviewRating{}
	for rows.Next() {
		var rv model.ReviewRating
		if err := rows.Scan(
			&rv.ID, &rv.Score, &rv.ReviewText, &rv.BookID, &rv.UserID, &rv.CreatedAt,
			&rv.UserDisplayName, &rv.Username, &rv.BookTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return reviews, nil
}

func (r *postgresRepository) Create(ctx context.Context, rv *model.ReviewRating) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO review_ratings (id, score, review_text, book_id, user_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at
    `, rv.ID, rv.Score, rv.ReviewText, rv.BookID, rv.UserID).Scan(&rv.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrInvalidReference
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetScoresByBook(ctx context.Context, bookID uuid.UUID) ([]int, error) {
	rows, err := r.db.Query(ctx, `
        SELECT score FROM review_ratings WHERE book_id = $1
    `, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list review scores: %w", err)
	}
	defer rows.Close()

	scores := []int{}
	for rows.Next() {
		var s int
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan review score: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate review scores: %w", err)
	}

	return scores, nil
}
