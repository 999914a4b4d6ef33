package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateReviewRequest - POST /api/review
// The reviewer comes from the access token, never from the payload.
type CreateReviewRequest struct {
	BookID     uuid.UUID `json:"book_id"`
	Score      int       `json:"score"`
	ReviewText *string   `json:"review_text,omitempty"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.By(requiredUUID)),
		validation.Field(&r.Score, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&r.ReviewText, validation.Length(0, 10000)),
	)
}

// requiredUUID rejects the zero uuid. validation.Required cannot be
// used here: a [16]byte array is never "empty" to ozzo.
func requiredUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.ErrRequired
	}
	return nil
}

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	Score      int       `json:"score"`
	ReviewText *string   `json:"review_text,omitempty"`
	BookID     uuid.UUID `json:"book_id"`
	UserID     string    `json:"user_id"`
	UserName   *string   `json:"user_name,omitempty"`
	BookTitle  *string   `json:"book_title,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AverageRatingResponse - GET /api/review/book/:bookId/average
type AverageRatingResponse struct {
	BookID  uuid.UUID `json:"book_id"`
	Average float64   `json:"average"`
	Count   int       `json:"count"`
}

func (rv *ReviewRating) ToResponse() *ReviewResponse {
	resp := &ReviewResponse{
		ID:         rv.ID,
		Score:      rv.Score,
		ReviewText: rv.ReviewText,
		BookID:     rv.BookID,
		UserID:     rv.UserID,
		BookTitle:  rv.BookTitle,
		CreatedAt:  rv.CreatedAt,
	}

	// Prefer the display name, fall back to the login name.
	if rv.UserDisplayName != nil && *rv.UserDisplayName != "" {
		resp.UserName = rv.UserDisplayName
	} else {
		resp.UserName = rv.Username
	}

	return resp
}

func (r *CreateReviewRequest) ToEntity(userID string) *ReviewRating {
	return &ReviewRating{
		ID:         uuid.New(),
		Score:      r.Score,
		ReviewText: r.ReviewText,
		BookID:     r.BookID,
		UserID:     userID,
	}
}
