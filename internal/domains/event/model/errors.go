package model

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	// ErrInvalidReference covers book ids that do not exist when attaching
	// a book to an event.
	ErrInvalidReference = errors.New("referenced entity does not exist")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return "EVENT_NOT_FOUND"
	case errors.Is(err, ErrInvalidReference):
		return "INVALID_REFERENCE"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return 404
	case errors.Is(err, ErrInvalidReference):
		return 400
	default:
		return 500
	}
}
