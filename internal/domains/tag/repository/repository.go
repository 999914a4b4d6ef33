package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookrating-backend/internal/domains/tag/model"
	"bookrating-backend/pkg/database"
)

// Repository defines data access for tags.
type Repository interface {
	GetAll(ctx context.Context) ([]model.Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error)
	Create(ctx context.Context, t *model.Tag) error
	Update(ctx context.Context, t *model.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Tag, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, created_at, updated_at FROM tags`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := []model.Tag{}
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}

	return tags, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	var t model.Tag
	err := r.db.QueryRow(ctx, `
        SELECT id, name, created_at, updated_at FROM tags WHERE id = $1
    `, id).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag by id: %w", err)
	}

	return &t, nil
}

func (r *postgresRepository) Create(ctx context.Context, t *model.Tag) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO tags (id, name) VALUES ($1, $2)
        RETURNING created_at, updated_at
    `, t.ID, t.Name).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, t *model.Tag) error {
	err := r.db.QueryRow(ctx, `
        UPDATE tags SET name = $2, updated_at = NOW() WHERE id = $1
        RETURNING updated_at
    `, t.ID, t.Name).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrTagNotFound
		}
		return fmt.Errorf("failed to update tag: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// book_tags rows go with the tag (ON DELETE CASCADE).
	_, err := r.db.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	return nil
}
