package model

import "errors"

var (
	ErrReviewNotFound = errors.New("review not found")
	// ErrInvalidReference covers book ids that do not exist when
	// submitting a review.
	ErrInvalidReference = errors.New("referenced entity does not exist")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrReviewNotFound):
		return "REVIEW_NOT_FOUND"
	case errors.Is(err, ErrInvalidReference):
		return "INVALID_REFERENCE"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrReviewNotFound):
		return 404
	case errors.Is(err, ErrInvalidReference):
		return 400
	default:
		return 500
	}
}
