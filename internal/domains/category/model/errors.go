package model

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category has linked books")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return "CATEGORY_NOT_FOUND"
	case errors.Is(err, ErrCategoryInUse):
		return "CATEGORY_IN_USE"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return 404
	case errors.Is(err, ErrCategoryInUse):
		return 409
	default:
		return 500
	}
}
