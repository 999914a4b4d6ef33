package service

import (
	"context"

	"github.com/google/uuid"

	"bookrating-backend/internal/domains/review/model"
	"bookrating-backend/internal/domains/review/repository"
	usermodel "bookrating-backend/internal/domains/user/model"
	userrepo "bookrating-backend/internal/domains/user/repository"
	"bookrating-backend/pkg/database"
)

// Service is the business-logic contract for review ratings.
type Service interface {
	GetByBook(ctx context.Context, bookID uuid.UUID) ([]model.ReviewResponse, error)

	// GetAverageRating computes the mean score for a book. A book with
	// no reviews averages 0.0.
	GetAverageRating(ctx context.Context, bookID uuid.UUID) (*model.AverageRatingResponse, error)

	// AddReview stores a review for the authenticated subject,
	// provisioning the user row on first contact. Both writes happen in
	// one transaction.
	AddReview(ctx context.Context, userID string, req *model.CreateReviewRequest) (*model.ReviewResponse, error)
}

type reviewService struct {
	repo  repository.Repository
	users userrepo.Repository
	uow   database.UnitOfWork
}

func NewReviewService(repo repository.Repository, users userrepo.Repository, uow database.UnitOfWork) Service {
	return &reviewService{
		repo:  repo,
		users: users,
		uow:   uow,
	}
}

func (s *reviewService) GetByBook(ctx context.Context, bookID uuid.UUID) ([]model.ReviewResponse, error) {
	reviews, err := s.repo.GetByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = *reviews[i].ToResponse()
	}
	return responses, nil
}

func (s *reviewService) GetAverageRating(ctx context.Context, bookID uuid.UUID) (*model.AverageRatingResponse, error) {
	scores, err := s.repo.GetScoresByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	resp := &model.AverageRatingResponse{
		BookID: bookID,
		Count:  len(scores),
	}
	if len(scores) == 0 {
		return resp, nil
	}

	sum := 0
	for _, sc := range scores {
		sum += sc
	}
	resp.Average = float64(sum) / float64(len(scores))

	return resp, nil
}

func (s *reviewService) AddReview(ctx context.Context, userID string, req *model.CreateReviewRequest) (*model.ReviewResponse, error) {
	rv := req.ToEntity(userID)

	err := s.uow.Execute(ctx, func(q database.Querier) error {
		users := s.users.WithQuerier(q)

		exists, err := users.Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			if err := users.Create(ctx, usermodel.Placeholder(userID)); err != nil {
				return err
			}
		}

		return s.repo.WithQuerier(q).Create(ctx, rv)
	})
	if err != nil {
		return nil, err
	}

	return rv.ToResponse(), nil
}
