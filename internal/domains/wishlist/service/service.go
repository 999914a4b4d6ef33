package service

import (
	"context"

	"github.com/google/uuid"

	"bookrating-backend/internal/domains/wishlist/model"
	"bookrating-backend/internal/domains/wishlist/repository"
)

// Service is the business-logic contract for wishlists. Every method
// takes the acting user's id; ownership is enforced here, not in the
// repository.
type Service interface {
	GetMine(ctx context.Context, userID string) ([]model.WishlistResponse, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*model.WishlistDetailResponse, error)
	Create(ctx context.Context, userID string, req *model.CreateWishlistRequest) (*model.WishlistResponse, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	AddBook(ctx context.Context, userID string, wishlistID, bookID uuid.UUID) error
	RemoveBook(ctx context.Context, userID string, wishlistID, bookID uuid.UUID) error
}

type wishlistService struct {
	repo repository.Repository
}

func NewWishlistService(repo repository.Repository) Service {
	return &wishlistService{repo: repo}
}

func (s *wishlistService) GetMine(ctx context.Context, userID string) ([]model.WishlistResponse, error) {
	wishlists, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.WishlistResponse, len(wishlists))
	for i := range wishlists {
		responses[i] = *wishlists[i].ToResponse()
	}
	return responses, nil
}

func (s *wishlistService) GetByID(ctx context.Context, userID string, id uuid.UUID) (*model.WishlistDetailResponse, error) {
	w, err := s.ownedWishlist(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	books, err := s.repo.GetBooks(ctx, id)
	if err != nil {
		return nil, err
	}

	return w.ToDetailResponse(books), nil
}

func (s *wishlistService) Create(ctx context.Context, userID string, req *model.CreateWishlistRequest) (*model.WishlistResponse, error) {
	w := req.ToEntity(userID)
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}

	return w.ToResponse(), nil
}

func (s *wishlistService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if _, err := s.ownedWishlist(ctx, userID, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *wishlistService) AddBook(ctx context.Context, userID string, wishlistID, bookID uuid.UUID) error {
	if _, err := s.ownedWishlist(ctx, userID, wishlistID); err != nil {
		return err
	}

	return s.repo.AddBook(ctx, wishlistID, bookID)
}

func (s *wishlistService) RemoveBook(ctx context.Context, userID string, wishlistID, bookID uuid.UUID) error {
	if _, err := s.ownedWishlist(ctx, userID, wishlistID); err != nil {
		return err
	}

	return s.repo.RemoveBook(ctx, wishlistID, bookID)
}

// ownedWishlist fetches the wishlist and rejects callers who do not
// own it. The wishlist itself is left untouched either way.
func (s *wishlistService) ownedWishlist(ctx context.Context, userID string, id uuid.UUID) (*model.Wishlist, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !w.IsOwnedBy(userID) {
		return nil, model.ErrNotOwner
	}
	return w, nil
}
