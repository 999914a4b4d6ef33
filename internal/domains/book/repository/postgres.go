package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bookrating-backend/internal/domains/book/model"
	"bookrating-backend/pkg/cache"
	"bookrating-backend/pkg/database"
)

type postgresRepository struct {
	db    database.Querier
	cache cache.Cache
}

// NewPostgresRepository creates a book repository with a Redis
// read-through cache on by-id lookups.
func NewPostgresRepository(db database.Querier, cache cache.Cache) Repository {
	return &postgresRepository{
		db:    db,
		cache: cache,
	}
}

const (
	bookCacheKeyPrefix = "book:"
	cacheTTL           = 15 * time.Minute
)

const bookSelect = `
    SELECT b.id, b.title, b.isbn, b.description, b.published_date, b.cover_image_url,
           b.category_id, b.author_id, b.publisher_id, b.created_at, b.updated_at,
           a.name AS author_name, p.name AS publisher_name, c.name AS category_name
    FROM books b
    LEFT JOIN authors a ON a.id = b.author_id
    LEFT JOIN publishers p ON p.id = b.publisher_id
    JOIN categories c ON c.id = b.category_id
`

func scanBook(row pgx.Row, b *model.Book) error {
	return row.Scan(
		&b.ID, &b.Title, &b.ISBN, &b.Description, &b.PublishedDate, &b.CoverImageURL,
		&b.CategoryID, &b.AuthorID, &b.PublisherID, &b.CreatedAt, &b.UpdatedAt,
		&b.AuthorName, &b.PublisherName, &b.CategoryName,
	)
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	rows, err := r.db.Query(ctx, bookSelect)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var b model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &b); err == nil && found {
		return &b, nil
	}

	err := scanBook(r.db.QueryRow(ctx, bookSelect+` WHERE b.id = $1`, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, &b, cacheTTL)

	return &b, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO books (id, title, isbn, description, published_date, cover_image_url,
                           category_id, author_id, publisher_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at, updated_at
    `, b.ID, b.Title, b.ISBN, b.Description, b.PublishedDate, b.CoverImageURL,
		b.CategoryID, b.AuthorID, b.PublisherID,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return mapBookWriteError(err, "create")
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) error {
	err := r.db.QueryRow(ctx, `
        UPDATE books
        SET title = $2, isbn = $3, description = $4, published_date = $5,
            cover_image_url = $6, category_id = $7, author_id = $8, publisher_id = $9,
            updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `, b.ID, b.Title, b.ISBN, b.Description, b.PublishedDate, b.CoverImageURL,
		b.CategoryID, b.AuthorID, b.PublisherID,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrBookNotFound
		}
		return mapBookWriteError(err, "update")
	}

	r.invalidate(ctx, b.ID)

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	r.invalidate(ctx, id)

	return nil
}

func (r *postgresRepository) GetTags(ctx context.Context, bookID uuid.UUID) ([]model.TagRef, error) {
	rows, err := r.db.Query(ctx, `
        SELECT t.id, t.name
        FROM tags t
        JOIN book_tags bt ON bt.tag_id = t.id
        WHERE bt.book_id = $1
    `, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list book tags: %w", err)
	}
	defer rows.Close()

	tags := []model.TagRef{}
	for rows.Next() {
		var t model.TagRef
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan book tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate book tags: %w", err)
	}

	return tags, nil
}

func (r *postgresRepository) AddTag(ctx context.Context, bookID, tagID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO book_tags (book_id, tag_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `, bookID, tagID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrInvalidReference
		}
		return fmt.Errorf("failed to attach tag: %w", err)
	}

	return nil
}

func (r *postgresRepository) RemoveTag(ctx context.Context, bookID, tagID uuid.UUID) error {
	// Detaching an absent pair deletes zero rows; not an error.
	_, err := r.db.Exec(ctx, `
        DELETE FROM book_tags WHERE book_id = $1 AND tag_id = $2
    `, bookID, tagID)
	if err != nil {
		return fmt.Errorf("failed to detach tag: %w", err)
	}

	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+id.String())
}

func mapBookWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			return model.ErrInvalidReference
		case "23505": // unique_violation
			return model.ErrDuplicateISBN
		}
	}
	return fmt.Errorf("failed to %s book: %w", op, err)
}
