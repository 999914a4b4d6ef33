package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookrating-backend/internal/domains/user/model"
	"bookrating-backend/pkg/database"
)

var ErrUserNotFound = errors.New("user not found")

// Repository defines data access for lazily-provisioned users.
type Repository interface {
	Exists(ctx context.Context, id string) (bool, error)

	// Create inserts a user row. Re-inserting an existing id is a no-op
	// so concurrent first writes from the same subject cannot race.
	Create(ctx context.Context, u *model.User) error

	// GetByID returns ErrUserNotFound when absent.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// WithQuerier rebinds the repository to another Querier, typically a
	// transaction, so user provisioning can join a larger unit of work.
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

func (r *postgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *model.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, username, email, display_name)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING
    `, u.ID, u.Username, u.Email, u.DisplayName)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(ctx, `
        SELECT id, username, email, display_name, created_at, updated_at
        FROM users
        WHERE id = $1
    `, id).Scan(&u.ID, &u.Username, &u.Email, &u.DisplayName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}
