package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrating-backend/internal/domains/wishlist/model"
)

type fakeRepository struct {
	wishlists map[uuid.UUID]model.Wishlist
	books     map[uuid.UUID][]model.BookRef
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		wishlists: make(map[uuid.UUID]model.Wishlist),
		books:     make(map[uuid.UUID][]model.BookRef),
	}
}

func (f *fakeRepository) GetByUser(_ context.Context, userID string) ([]model.Wishlist, error) {
	out := []model.Wishlist{}
	for _, w := range f.wishlists {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Wishlist, error) {
	w, ok := f.wishlists[id]
	if !ok {
		return nil, model.ErrWishlistNotFound
	}
	return &w, nil
}

func (f *fakeRepository) Create(_ context.Context, w *model.Wishlist) error {
	f.wishlists[w.ID] = *w
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.wishlists, id)
	delete(f.books, id)
	return nil
}

func (f *fakeRepository) GetBooks(_ context.Context, wishlistID uuid.UUID) ([]model.BookRef, error) {
	return f.books[wishlistID], nil
}

func (f *fakeRepository) AddBook(_ context.Context, wishlistID, bookID uuid.UUID) error {
	for _, b := range f.books[wishlistID] {
		if b.ID == bookID {
			return nil
		}
	}
	f.books[wishlistID] = append(f.books[wishlistID], model.BookRef{ID: bookID})
	return nil
}

func (f *fakeRepository) RemoveBook(_ context.Context, wishlistID, bookID uuid.UUID) error {
	kept := f.books[wishlistID][:0]
	for _, b := range f.books[wishlistID] {
		if b.ID != bookID {
			kept = append(kept, b)
		}
	}
	f.books[wishlistID] = kept
	return nil
}

func TestWishlistService_CreateAssignsOwner(t *testing.T) {
	svc := NewWishlistService(newFakeRepository())

	w, err := svc.Create(context.Background(), "alice", &model.CreateWishlistRequest{Name: "To Read"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, w.ID)
	assert.Equal(t, "alice", w.UserID)
	assert.Equal(t, "To Read", w.Name)
}

func TestWishlistService_GetMine_OnlyOwn(t *testing.T) {
	svc := NewWishlistService(newFakeRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "alice", &model.CreateWishlistRequest{Name: "Mine"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob", &model.CreateWishlistRequest{Name: "Theirs"})
	require.NoError(t, err)

	mine, err := svc.GetMine(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Name)
}

func TestWishlistService_Delete_NonOwnerRejected(t *testing.T) {
	repo := newFakeRepository()
	svc := NewWishlistService(repo)
	ctx := context.Background()

	w, err := svc.Create(ctx, "alice", &model.CreateWishlistRequest{Name: "Keep Out"})
	require.NoError(t, err)

	err = svc.Delete(ctx, "bob", w.ID)
	assert.ErrorIs(t, err, model.ErrNotOwner)

	// The wishlist must survive the rejected delete.
	got, err := svc.GetByID(ctx, "alice", w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)
}

func TestWishlistService_Delete_Owner(t *testing.T) {
	svc := NewWishlistService(newFakeRepository())
	ctx := context.Background()

	w, err := svc.Create(ctx, "alice", &model.CreateWishlistRequest{Name: "Done"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "alice", w.ID))

	_, err = svc.GetByID(ctx, "alice", w.ID)
	assert.ErrorIs(t, err, model.ErrWishlistNotFound)
}

func TestWishlistService_GetByID_NonOwnerRejected(t *testing.T) {
	svc := NewWishlistService(newFakeRepository())
	ctx := context.Background()

	w, err := svc.Create(ctx, "alice", &model.CreateWishlistRequest{Name: "Private"})
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, "bob", w.ID)
	assert.ErrorIs(t, err, model.ErrNotOwner)
}

func TestWishlistService_AddRemoveBook(t *testing.T) {
	svc := NewWishlistService(newFakeRepository())
	ctx := context.Background()

	w, err := svc.Create(ctx, "alice", &model.CreateWishlistRequest{Name: "Reading"})
	require.NoError(t, err)

	bookID := uuid.New()
	require.NoError(t, svc.AddBook(ctx, "alice", w.ID, bookID))
	// Re-adding is a no-op.
	require.NoError(t, svc.AddBook(ctx, "alice", w.ID, bookID))

	detail, err := svc.GetByID(ctx, "alice", w.ID)
	require.NoError(t, err)
	require.Len(t, detail.Books, 1)
	assert.Equal(t, bookID, detail.Books[0].ID)

	require.NoError(t, svc.RemoveBook(ctx, "alice", w.ID, bookID))
	// Removing an absent book is a no-op.
	require.NoError(t, svc.RemoveBook(ctx, "alice", w.ID, bookID))

	detail, err = svc.GetByID(ctx, "alice", w.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Books)
}

func TestWishlistService_AddBook_NonOwnerRejected(t *testing.T) {
	svc := NewWishlistService(newFakeRepository())
	ctx := context.Background()

	w, err := svc.Create(ctx, "alice", &model.CreateWishlistRequest{Name: "Locked"})
	require.NoError(t, err)

	err = svc.AddBook(ctx, "bob", w.ID, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotOwner)
}
