package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bookrating-backend/internal/domains/event/model"
	"bookrating-backend/pkg/cache"
	"bookrating-backend/pkg/database"
)

// Repository defines data access for events and the book_events join.
type Repository interface {
	GetAll(ctx context.Context) ([]model.Event, error)

	// GetByID returns ErrEventNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)

	// Create inserts a new event with its pre-assigned id.
	Create(ctx context.Context, e *model.Event) error

	// GetBooks lists the books attached to an event.
	GetBooks(ctx context.Context, eventID uuid.UUID) ([]model.BookRef, error)

	// AddBook attaches a book; re-attaching is a no-op. Returns
	// ErrInvalidReference when the book does not exist.
	AddBook(ctx context.Context, eventID, bookID uuid.UUID) error

	// RemoveBook detaches a book; detaching an absent pair is a no-op.
	RemoveBook(ctx context.Context, eventID, bookID uuid.UUID) error
}

type postgresRepository struct {
	db    database.Querier
	cache cache.Cache
}

func NewPostgresRepository(db database.Querier, cache cache.Cache) Repository {
	return &postgresRepository{
		db:    db,
		cache: cache,
	}
}

const (
	eventCacheKeyPrefix = "event:"
	cacheTTL            = 15 * time.Minute
)

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, name, description, start_date, end_date, created_at, updated_at
        FROM events
        ORDER BY start_date DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	cacheKey := eventCacheKeyPrefix + id.String()

	var e model.Event
	if found, err := r.cache.Get(ctx, cacheKey, &e); err == nil && found {
		return &e, nil
	}

	err := r.db.QueryRow(ctx, `
        SELECT id, name, description, start_date, end_date, created_at, updated_at
        FROM events
        WHERE id = $1
    `, id).Scan(&e.ID, &e.Name, &e.Description, &e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, &e, cacheTTL)

	return &e, nil
}

func (r *postgresRepository) Create(ctx context.Context, e *model.Event) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO events (id, name, description, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at, updated_at
    `, e.ID, e.Name, e.Description, e.StartDate, e.EndDate).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetBooks(ctx context.Context, eventID uuid.UUID) ([]model.BookRef, error) {
	rows, err := r.db.Query(ctx, `
        SELECT b.id, b.title
        FROM books b
        JOIN book_events be ON be.book_id = b.id
        WHERE be.event_id = $1
    `, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event books: %w", err)
	}
	defer rows.Close()

	books := []model.BookRef{}
	for rows.Next() {
		var b model.BookRef
		if err := rows.Scan(&b.ID, &b.Title); err != nil {
			return nil, fmt.Errorf("failed to scan event book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) AddBook(ctx context.Context, eventID, bookID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO book_events (event_id, book_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `, eventID, bookID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrInvalidReference
		}
		return fmt.Errorf("failed to attach book: %w", err)
	}

	return nil
}

func (r *postgresRepository) RemoveBook(ctx context.Context, eventID, bookID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        DELETE FROM book_events WHERE event_id = $1 AND book_id = $2
    `, eventID, bookID)
	if err != nil {
		return fmt.Errorf("failed to detach book: %w", err)
	}

	return nil
}
