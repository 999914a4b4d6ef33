package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateWishlistRequest - POST /api/wishlist
// The owner comes from the access token, never from the payload.
type CreateWishlistRequest struct {
	Name string `json:"name"`
}

func (r CreateWishlistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
	)
}

type WishlistResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	UserID string    `json:"user_id"`
}

// WishlistDetailResponse additionally lists the collected books.
type WishlistDetailResponse struct {
	WishlistResponse
	Books []BookRef `json:"books"`
}

// BookRef is the minimal book projection embedded in wishlist reads.
type BookRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

func (w *Wishlist) ToResponse() *WishlistResponse {
	return &WishlistResponse{
		ID:     w.ID,
		Name:   w.Name,
		UserID: w.UserID,
	}
}

func (w *Wishlist) ToDetailResponse(books []BookRef) *WishlistDetailResponse {
	if books == nil {
		books = []BookRef{}
	}
	return &WishlistDetailResponse{
		WishlistResponse: *w.ToResponse(),
		Books:            books,
	}
}

func (r *CreateWishlistRequest) ToEntity(userID string) *Wishlist {
	return &Wishlist{
		ID:     uuid.New(),
		Name:   r.Name,
		UserID: userID,
	}
}
