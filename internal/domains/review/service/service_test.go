package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrating-backend/internal/domains/review/model"
	"bookrating-backend/internal/domains/review/repository"
	usermodel "bookrating-backend/internal/domains/user/model"
	userrepo "bookrating-backend/internal/domains/user/repository"
	"bookrating-backend/pkg/database"
)

type fakeReviewRepo struct {
	reviews []model.ReviewRating
}

func (f *fakeReviewRepo) GetByBook(_ context.Context, bookID uuid.UUID) ([]model.ReviewRating, error) {
	out := []model.ReviewRating{}
	for _, rv := range f.reviews {
		if rv.BookID == bookID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Create(_ context.Context, rv *model.ReviewRating) error {
	f.reviews = append(f.reviews, *rv)
	return nil
}

func (f *fakeReviewRepo) GetScoresByBook(_ context.Context, bookID uuid.UUID) ([]int, error) {
	scores := []int{}
	for _, rv := range f.reviews {
		if rv.BookID == bookID {
			scores = append(scores, rv.Score)
		}
	}
	return scores, nil
}

func (f *fakeReviewRepo) WithQuerier(database.Querier) repository.Repository {
	return f
}

type fakeUserRepo struct {
	users   map[string]usermodel.User
	creates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]usermodel.User)}
}

func (f *fakeUserRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *usermodel.User) error {
	f.creates++
	if _, ok := f.users[u.ID]; !ok {
		f.users[u.ID] = *u
	}
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*usermodel.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userrepo.ErrUserNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) WithQuerier(database.Querier) userrepo.Repository {
	return f
}

// fakeUnitOfWork runs the function without a real transaction; the
// fakes above have no connection to rebind anyway.
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Execute(_ context.Context, fn func(q database.Querier) error) error {
	return fn(nil)
}

func newTestService() (Service, *fakeReviewRepo, *fakeUserRepo) {
	reviews := &fakeReviewRepo{}
	users := newFakeUserRepo()
	return NewReviewService(reviews, users, fakeUnitOfWork{}), reviews, users
}

func TestGetAverageRating_NoReviews(t *testing.T) {
	svc, _, _ := newTestService()

	avg, err := svc.GetAverageRating(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg.Average)
	assert.Equal(t, 0, avg.Count)
}

func TestGetAverageRating_MeanOfScores(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	bookID := uuid.New()

	for _, score := range []int{3, 4, 5} {
		_, err := svc.AddReview(ctx, "user-1", &model.CreateReviewRequest{
			BookID: bookID,
			Score:  score,
		})
		require.NoError(t, err)
	}

	avg, err := svc.GetAverageRating(ctx, bookID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg.Average, 1e-9)
	assert.Equal(t, 3, avg.Count)
	assert.Equal(t, bookID, avg.BookID)
}

func TestGetAverageRating_IgnoresOtherBooks(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	bookID := uuid.New()

	_, err := svc.AddReview(ctx, "user-1", &model.CreateReviewRequest{BookID: bookID, Score: 2})
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, "user-1", &model.CreateReviewRequest{BookID: uuid.New(), Score: 5})
	require.NoError(t, err)

	avg, err := svc.GetAverageRating(ctx, bookID)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, avg.Average, 1e-9)
	assert.Equal(t, 1, avg.Count)
}

func TestAddReview_ProvisionsUserOnce(t *testing.T) {
	svc, _, users := newTestService()
	ctx := context.Background()

	_, err := svc.AddReview(ctx, "subject-42", &model.CreateReviewRequest{BookID: uuid.New(), Score: 4})
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, "subject-42", &model.CreateReviewRequest{BookID: uuid.New(), Score: 5})
	require.NoError(t, err)

	assert.Equal(t, 1, users.creates, "second review must reuse the provisioned user")

	u, err := users.GetByID(ctx, "subject-42")
	require.NoError(t, err)
	assert.Equal(t, "subject-42", u.Username, "placeholder username is the subject")
}

func TestAddReview_ReturnsCreatedReview(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	bookID := uuid.New()
	text := "Could not put it down."

	rv, err := svc.AddReview(ctx, "subject-7", &model.CreateReviewRequest{
		BookID:     bookID,
		Score:      5,
		ReviewText: &text,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rv.ID)
	assert.Equal(t, bookID, rv.BookID)
	assert.Equal(t, "subject-7", rv.UserID)
	assert.Equal(t, 5, rv.Score)
	require.NotNil(t, rv.ReviewText)
	assert.Equal(t, text, *rv.ReviewText)
}

func TestAddReview_SameUserSameBookTwice(t *testing.T) {
	svc, reviews, _ := newTestService()
	ctx := context.Background()
	bookID := uuid.New()

	_, err := svc.AddReview(ctx, "u", &model.CreateReviewRequest{BookID: bookID, Score: 2})
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, "u", &model.CreateReviewRequest{BookID: bookID, Score: 4})
	require.NoError(t, err)

	got, err := reviews.GetByBook(ctx, bookID)
	require.NoError(t, err)
	assert.Len(t, got, 2, "a user may review the same book more than once")
}
