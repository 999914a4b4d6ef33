package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookrating-backend/internal/domains/author/model"
	"bookrating-backend/pkg/cache"
	"bookrating-backend/pkg/database"
)

// postgresRepository implements Repository over pgx with a Redis
// read-through cache on by-id lookups.
type postgresRepository struct {
	db    database.Querier
	cache cache.Cache
}

// NewPostgresRepository creates an author repository.
// db may be the pool or a transaction.
func NewPostgresRepository(db database.Querier, cache cache.Cache) Repository {
	return &postgresRepository{
		db:    db,
		cache: cache,
	}
}

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Author, error) {
	query := `
        SELECT id, name, biography, birth_date, created_at, updated_at
        FROM authors
    `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Biography, &a.BirthDate, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `
        SELECT id, name, biography, birth_date, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Biography, &a.BirthDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, &a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) error {
	query := `
        INSERT INTO authors (id, name, biography, birth_date)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at
    `

	err := r.db.QueryRow(ctx, query, a.ID, a.Name, a.Biography, a.BirthDate).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Author) error {
	query := `
        UPDATE authors
        SET name = $2, biography = $3, birth_date = $4, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `

	err := r.db.QueryRow(ctx, query, a.ID, a.Name, a.Biography, a.BirthDate).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrAuthorNotFound
		}
		return fmt.Errorf("failed to update author: %w", err)
	}

	r.invalidate(ctx, a.ID)

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Absent rows delete zero rows; that is deliberately not an error.
	_, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	_ = r.cache.Delete(ctx, authorCacheKeyPrefix+id.String())
}
