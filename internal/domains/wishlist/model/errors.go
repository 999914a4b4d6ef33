package model

import "errors"

var (
	ErrWishlistNotFound = errors.New("wishlist not found")
	// ErrNotOwner rejects operations on a wishlist owned by someone else.
	ErrNotOwner = errors.New("wishlist belongs to another user")
	// ErrInvalidReference covers book ids that do not exist when adding
	// a book to a wishlist.
	ErrInvalidReference = errors.New("referenced entity does not exist")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrWishlistNotFound):
		return "WISHLIST_NOT_FOUND"
	case errors.Is(err, ErrNotOwner):
		return "FORBIDDEN"
	case errors.Is(err, ErrInvalidReference):
		return "INVALID_REFERENCE"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrWishlistNotFound):
		return 404
	case errors.Is(err, ErrNotOwner):
		return 403
	case errors.Is(err, ErrInvalidReference):
		return 400
	default:
		return 500
	}
}
