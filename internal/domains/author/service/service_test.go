package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrating-backend/internal/domains/author/model"
)

// fakeRepository keeps authors in a map, mirroring the repository's
// contract: GetByID/Update report ErrAuthorNotFound, Delete is a no-op
// for absent ids.
type fakeRepository struct {
	authors map[uuid.UUID]model.Author
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{authors: make(map[uuid.UUID]model.Author)}
}

func (f *fakeRepository) GetAll(_ context.Context) ([]model.Author, error) {
	all := []model.Author{}
	for _, a := range f.authors {
		all = append(all, a)
	}
	return all, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return &a, nil
}

func (f *fakeRepository) Create(_ context.Context, a *model.Author) error {
	f.authors[a.ID] = *a
	return nil
}

func (f *fakeRepository) Update(_ context.Context, a *model.Author) error {
	if _, ok := f.authors[a.ID]; !ok {
		return model.ErrAuthorNotFound
	}
	f.authors[a.ID] = *a
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.authors, id)
	return nil
}

func TestAuthorService_CreateThenGet(t *testing.T) {
	svc := NewAuthorService(newFakeRepository())
	ctx := context.Background()

	bio := "Wrote a lot."
	created, err := svc.Create(ctx, &model.CreateAuthorRequest{
		Name:      "Ursula K. Le Guin",
		Biography: &bio,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID, "create must assign an id")

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ursula K. Le Guin", got.Name)
	require.NotNil(t, got.Biography)
	assert.Equal(t, bio, *got.Biography)
}

func TestAuthorService_GetByID_Absent(t *testing.T) {
	svc := NewAuthorService(newFakeRepository())

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestAuthorService_GetByID_NilID(t *testing.T) {
	svc := NewAuthorService(newFakeRepository())

	_, err := svc.GetByID(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestAuthorService_Update(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthorService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateAuthorRequest{Name: "Old Name"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &model.UpdateAuthorRequest{Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "update must not change the id")
	assert.Equal(t, "New Name", updated.Name)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
}

func TestAuthorService_Update_Absent(t *testing.T) {
	svc := NewAuthorService(newFakeRepository())

	_, err := svc.Update(context.Background(), uuid.New(), &model.UpdateAuthorRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestAuthorService_Delete_AbsentIsNoOp(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthorService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateAuthorRequest{Name: "Survivor"})
	require.NoError(t, err)

	// Deleting an id that never existed succeeds and leaves the rest alone.
	require.NoError(t, svc.Delete(ctx, uuid.New()))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Deleting twice is equally fine.
	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}
