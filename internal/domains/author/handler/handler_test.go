package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookrating-backend/internal/domains/author/model"
)

type fakeService struct {
	authors map[uuid.UUID]model.AuthorResponse
}

func newFakeService() *fakeService {
	return &fakeService{authors: make(map[uuid.UUID]model.AuthorResponse)}
}

func (f *fakeService) GetAll(_ context.Context) ([]model.AuthorResponse, error) {
	all := []model.AuthorResponse{}
	for _, a := range f.authors {
		all = append(all, a)
	}
	return all, nil
}

func (f *fakeService) GetByID(_ context.Context, id uuid.UUID) (*model.AuthorResponse, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return &a, nil
}

func (f *fakeService) Create(_ context.Context, req *model.CreateAuthorRequest) (*model.AuthorResponse, error) {
	a := model.AuthorResponse{
		ID:        uuid.New(),
		Name:      req.Name,
		Biography: req.Biography,
		BirthDate: req.BirthDate,
	}
	f.authors[a.ID] = a
	return &a, nil
}

func (f *fakeService) Update(_ context.Context, id uuid.UUID, req *model.UpdateAuthorRequest) (*model.AuthorResponse, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	a.Name = req.Name
	a.Biography = req.Biography
	a.BirthDate = req.BirthDate
	f.authors[id] = a
	return &a, nil
}

func (f *fakeService) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.authors, id)
	return nil
}

func setupTestRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc)

	router := gin.New()
	author := router.Group("/api/author")
	{
		author.GET("", h.GetAll)
		author.GET("/:id", h.GetByID)
		author.POST("", h.Create)
		author.PUT("/:id", h.Update)
		author.DELETE("/:id", h.Delete)
	}
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestAuthorHandler_Create(t *testing.T) {
	router := setupTestRouter(newFakeService())

	w, env := doRequest(t, router, http.MethodPost, "/api/author", gin.H{"name": "N. K. Jemisin"})
	assert.Equal(t, http.StatusCreated, w.Code)
	require.True(t, env.Success)

	var created model.AuthorResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEqual(t, uuid.Nil, created.ID, "201 body must carry the assigned id")
	assert.Equal(t, "N. K. Jemisin", created.Name)
}

func TestAuthorHandler_Create_ValidationFailure(t *testing.T) {
	router := setupTestRouter(newFakeService())

	w, env := doRequest(t, router, http.MethodPost, "/api/author", gin.H{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAuthorHandler_GetByID_NotFound(t *testing.T) {
	router := setupTestRouter(newFakeService())

	w, env := doRequest(t, router, http.MethodGet, "/api/author/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTHOR_NOT_FOUND", env.Error.Code)
}

func TestAuthorHandler_GetByID_MalformedID(t *testing.T) {
	router := setupTestRouter(newFakeService())

	w, env := doRequest(t, router, http.MethodGet, "/api/author/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestAuthorHandler_Update_NotFound(t *testing.T) {
	router := setupTestRouter(newFakeService())

	w, env := doRequest(t, router, http.MethodPut, "/api/author/"+uuid.NewString(), gin.H{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestAuthorHandler_Delete(t *testing.T) {
	svc := newFakeService()
	router := setupTestRouter(svc)

	created, err := svc.Create(context.Background(), &model.CreateAuthorRequest{Name: "Short-lived"})
	require.NoError(t, err)

	w, env := doRequest(t, router, http.MethodDelete, "/api/author/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w, _ = doRequest(t, router, http.MethodGet, "/api/author/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthorHandler_GetAll(t *testing.T) {
	svc := newFakeService()
	router := setupTestRouter(svc)

	_, err := svc.Create(context.Background(), &model.CreateAuthorRequest{Name: "One"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &model.CreateAuthorRequest{Name: "Two"})
	require.NoError(t, err)

	w, env := doRequest(t, router, http.MethodGet, "/api/author", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var all []model.AuthorResponse
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 2)
}
