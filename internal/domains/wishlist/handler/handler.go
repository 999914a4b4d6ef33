package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookrating-backend/internal/domains/wishlist/model"
	"bookrating-backend/internal/domains/wishlist/service"
	"bookrating-backend/internal/shared/middleware"
	"bookrating-backend/internal/shared/response"
)

// All wishlist routes sit behind the auth middleware, so the subject
// is always present; RequireUserID guards against wiring mistakes.
type WishlistHandler struct {
	service service.Service
}

func NewWishlistHandler(svc service.Service) *WishlistHandler {
	return &WishlistHandler{service: svc}
}

// GetMine - GET /api/wishlist
func (h *WishlistHandler) GetMine(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	wishlists, err := h.service.GetMine(c.Request.Context(), userID)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, wishlists)
}

// GetByID - GET /api/wishlist/:id
func (h *WishlistHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid wishlist id")
		return
	}

	w, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, w)
}

// Create - POST /api/wishlist
func (h *WishlistHandler) Create(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	var req model.CreateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid wishlist payload", err)
		return
	}

	w, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, w)
}

// Delete - DELETE /api/wishlist/:id
func (h *WishlistHandler) Delete(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid wishlist id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Message(c, http.StatusOK, "Wishlist deleted successfully.")
}

// AddBook - POST /api/wishlist/:id/books/:bookId
func (h *WishlistHandler) AddBook(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	wishlistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid wishlist id")
		return
	}
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	if err := h.service.AddBook(c.Request.Context(), userID, wishlistID, bookID); err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveBook - DELETE /api/wishlist/:id/books/:bookId
func (h *WishlistHandler) RemoveBook(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	wishlistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid wishlist id")
		return
	}
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	if err := h.service.RemoveBook(c.Request.Context(), userID, wishlistID, bookID); err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}
