package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookrating-backend/internal/domains/publisher/model"
	"bookrating-backend/pkg/database"
)

// Repository defines data access for publishers.
type Repository interface {
	GetAll(ctx context.Context) ([]model.Publisher, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Publisher, error)
	Create(ctx context.Context, p *model.Publisher) error
	Update(ctx context.Context, p *model.Publisher) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Publisher, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, name, description, website, created_at, updated_at
        FROM publishers
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list publishers: %w", err)
	}
	defer rows.Close()

	publishers := []model.Publisher{}
	for rows.Next() {
		var p model.Publisher
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Website, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan publisher: %w", err)
		}
		publishers = append(publishers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate publishers: %w", err)
	}

	return publishers, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Publisher, error) {
	var p model.Publisher
	err := r.db.QueryRow(ctx, `
        SELECT id, name, description, website, created_at, updated_at
        FROM publishers
        WHERE id = $1
    `, id).Scan(&p.ID, &p.Name, &p.Description, &p.Website, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPublisherNotFound
		}
		return nil, fmt.Errorf("failed to get publisher by id: %w", err)
	}

	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Publisher) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO publishers (id, name, description, website)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at
    `, p.ID, p.Name, p.Description, p.Website).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create publisher: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Publisher) error {
	err := r.db.QueryRow(ctx, `
        UPDATE publishers
        SET name = $2, description = $3, website = $4, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `, p.ID, p.Name, p.Description, p.Website).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrPublisherNotFound
		}
		return fmt.Errorf("failed to update publisher: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Books referencing this publisher keep a NULL publisher afterwards
	// (ON DELETE SET NULL in the schema).
	_, err := r.db.Exec(ctx, `DELETE FROM publishers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete publisher: %w", err)
	}

	return nil
}
