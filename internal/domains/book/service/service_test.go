package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrating-backend/internal/domains/book/model"
)

type fakeRepository struct {
	books map[uuid.UUID]model.Book
	tags  map[uuid.UUID][]model.TagRef
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		books: make(map[uuid.UUID]model.Book),
		tags:  make(map[uuid.UUID][]model.TagRef),
	}
}

func (f *fakeRepository) GetAll(_ context.Context) ([]model.Book, error) {
	all := []model.Book{}
	for _, b := range f.books {
		all = append(all, b)
	}
	return all, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return &b, nil
}

func (f *fakeRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.books[id]
	return ok, nil
}

func (f *fakeRepository) Create(_ context.Context, b *model.Book) error {
	for _, existing := range f.books {
		if existing.ISBN == b.ISBN {
			return model.ErrDuplicateISBN
		}
	}
	f.books[b.ID] = *b
	return nil
}

func (f *fakeRepository) Update(_ context.Context, b *model.Book) error {
	if _, ok := f.books[b.ID]; !ok {
		return model.ErrBookNotFound
	}
	f.books[b.ID] = *b
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.books, id)
	delete(f.tags, id)
	return nil
}

func (f *fakeRepository) GetTags(_ context.Context, bookID uuid.UUID) ([]model.TagRef, error) {
	return f.tags[bookID], nil
}

func (f *fakeRepository) AddTag(_ context.Context, bookID, tagID uuid.UUID) error {
	for _, t := range f.tags[bookID] {
		if t.ID == tagID {
			return nil
		}
	}
	f.tags[bookID] = append(f.tags[bookID], model.TagRef{ID: tagID})
	return nil
}

func (f *fakeRepository) RemoveTag(_ context.Context, bookID, tagID uuid.UUID) error {
	kept := f.tags[bookID][:0]
	for _, t := range f.tags[bookID] {
		if t.ID != tagID {
			kept = append(kept, t)
		}
	}
	f.tags[bookID] = kept
	return nil
}

func createBook(t *testing.T, svc Service, isbn string) *model.BookResponse {
	t.Helper()

	b, err := svc.Create(context.Background(), &model.CreateBookRequest{
		Title:      "The Dispossessed",
		ISBN:       isbn,
		CategoryID: uuid.New(),
	})
	require.NoError(t, err)
	return b
}

func TestBookService_CreateThenGetDetail(t *testing.T) {
	svc := NewBookService(newFakeRepository())

	created := createBook(t, svc, "978-0060512750")
	require.NotEqual(t, uuid.Nil, created.ID)

	detail, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, detail.ID)
	assert.Empty(t, detail.Tags)
	assert.NotNil(t, detail.Tags, "tags must serialize as [], not null")
}

func TestBookService_Create_DuplicateISBN(t *testing.T) {
	svc := NewBookService(newFakeRepository())

	createBook(t, svc, "dup-isbn")

	_, err := svc.Create(context.Background(), &model.CreateBookRequest{
		Title:      "Another",
		ISBN:       "dup-isbn",
		CategoryID: uuid.New(),
	})
	assert.ErrorIs(t, err, model.ErrDuplicateISBN)
}

func TestBookService_AddTag(t *testing.T) {
	svc := NewBookService(newFakeRepository())
	ctx := context.Background()

	created := createBook(t, svc, "isbn-1")
	tagID := uuid.New()

	require.NoError(t, svc.AddTag(ctx, created.ID, tagID))
	// Re-attaching the same tag is a no-op.
	require.NoError(t, svc.AddTag(ctx, created.ID, tagID))

	detail, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Tags, 1)
	assert.Equal(t, tagID, detail.Tags[0].ID)
}

func TestBookService_AddTag_UnknownBook(t *testing.T) {
	svc := NewBookService(newFakeRepository())

	err := svc.AddTag(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestBookService_RemoveTag_AbsentIsNoOp(t *testing.T) {
	svc := NewBookService(newFakeRepository())
	ctx := context.Background()

	created := createBook(t, svc, "isbn-2")

	assert.NoError(t, svc.RemoveTag(ctx, created.ID, uuid.New()))
}

func TestBookService_Update_Absent(t *testing.T) {
	svc := NewBookService(newFakeRepository())

	_, err := svc.Update(context.Background(), uuid.New(), &model.UpdateBookRequest{
		Title:      "Ghost",
		ISBN:       "none",
		CategoryID: uuid.New(),
	})
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
