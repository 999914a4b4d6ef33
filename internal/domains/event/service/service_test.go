package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrating-backend/internal/domains/event/model"
)

type fakeRepository struct {
	events map[uuid.UUID]model.Event
	books  map[uuid.UUID][]model.BookRef
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		events: make(map[uuid.UUID]model.Event),
		books:  make(map[uuid.UUID][]model.BookRef),
	}
}

func (f *fakeRepository) GetAll(_ context.Context) ([]model.Event, error) {
	all := []model.Event{}
	for _, e := range f.events {
		all = append(all, e)
	}
	return all, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, model.ErrEventNotFound
	}
	return &e, nil
}

func (f *fakeRepository) Create(_ context.Context, e *model.Event) error {
	f.events[e.ID] = *e
	return nil
}

func (f *fakeRepository) GetBooks(_ context.Context, eventID uuid.UUID) ([]model.BookRef, error) {
	return f.books[eventID], nil
}

func (f *fakeRepository) AddBook(_ context.Context, eventID, bookID uuid.UUID) error {
	for _, b := range f.books[eventID] {
		if b.ID == bookID {
			return nil
		}
	}
	f.books[eventID] = append(f.books[eventID], model.BookRef{ID: bookID})
	return nil
}

func (f *fakeRepository) RemoveBook(_ context.Context, eventID, bookID uuid.UUID) error {
	kept := f.books[eventID][:0]
	for _, b := range f.books[eventID] {
		if b.ID != bookID {
			kept = append(kept, b)
		}
	}
	f.books[eventID] = kept
	return nil
}

func TestEventService_CreateThenGet(t *testing.T) {
	svc := NewEventService(newFakeRepository())
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, &model.CreateEventRequest{
		Name:      "Autumn Book Fair",
		StartDate: start,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Autumn Book Fair", got.Name)
	assert.True(t, got.StartDate.Equal(start))
	assert.Empty(t, got.Books)
}

func TestEventService_GetByID_Absent(t *testing.T) {
	svc := NewEventService(newFakeRepository())

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrEventNotFound)
}

func TestEventService_AttachDetachRestoresBookSet(t *testing.T) {
	svc := NewEventService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateEventRequest{
		Name:      "Signing",
		StartDate: time.Now(),
	})
	require.NoError(t, err)

	existing := uuid.New()
	require.NoError(t, svc.AddBook(ctx, created.ID, existing))

	newcomer := uuid.New()
	require.NoError(t, svc.AddBook(ctx, created.ID, newcomer))
	require.NoError(t, svc.RemoveBook(ctx, created.ID, newcomer))

	// The original attachment set is back.
	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Books, 1)
	assert.Equal(t, existing, got.Books[0].ID)
}

func TestEventService_AddBook_Idempotent(t *testing.T) {
	svc := NewEventService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateEventRequest{
		Name:      "Reading Club",
		StartDate: time.Now(),
	})
	require.NoError(t, err)

	bookID := uuid.New()
	require.NoError(t, svc.AddBook(ctx, created.ID, bookID))
	require.NoError(t, svc.AddBook(ctx, created.ID, bookID))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Books, 1)
}

func TestEventService_AddBook_UnknownEvent(t *testing.T) {
	svc := NewEventService(newFakeRepository())

	err := svc.AddBook(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, model.ErrEventNotFound)
}

func TestEventService_RemoveBook_AbsentIsNoOp(t *testing.T) {
	svc := NewEventService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.CreateEventRequest{
		Name:      "Launch",
		StartDate: time.Now(),
	})
	require.NoError(t, err)

	assert.NoError(t, svc.RemoveBook(ctx, created.ID, uuid.New()))
}
