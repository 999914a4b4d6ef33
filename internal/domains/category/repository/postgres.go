package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bookrating-backend/internal/domains/category/model"
	"bookrating-backend/pkg/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, name, description, created_at, updated_at
        FROM categories
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var cat model.Category
	err := r.db.QueryRow(ctx, `
        SELECT id, name, description, created_at, updated_at
        FROM categories
        WHERE id = $1
    `, id).Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return &cat, nil
}

func (r *postgresRepository) Create(ctx context.Context, cat *model.Category) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO categories (id, name, description)
        VALUES ($1, $2, $3)
        RETURNING created_at, updated_at
    `, cat.ID, cat.Name, cat.Description).Scan(&cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, cat *model.Category) error {
	err := r.db.QueryRow(ctx, `
        UPDATE categories
        SET name = $2, description = $3, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `, cat.ID, cat.Name, cat.Description).Scan(&cat.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return model.ErrCategoryInUse
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
