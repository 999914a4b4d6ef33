package model

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	// ErrInvalidReference covers category/author/publisher/tag ids that
	// do not exist when creating or updating a book.
	ErrInvalidReference = errors.New("referenced entity does not exist")
	ErrDuplicateISBN    = errors.New("book with this ISBN already exists")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrInvalidReference):
		return "INVALID_REFERENCE"
	case errors.Is(err, ErrDuplicateISBN):
		return "DUPLICATE_ISBN"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrInvalidReference):
		return 400
	case errors.Is(err, ErrDuplicateISBN):
		return 409
	default:
		return 500
	}
}
