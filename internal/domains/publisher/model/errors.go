package model

import "errors"

var (
	ErrPublisherNotFound = errors.New("publisher not found")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPublisherNotFound):
		return "PUBLISHER_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPublisherNotFound):
		return 404
	default:
		return 500
	}
}
