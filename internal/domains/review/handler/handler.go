package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookrating-backend/internal/domains/review/model"
	"bookrating-backend/internal/domains/review/service"
	"bookrating-backend/internal/shared/middleware"
	"bookrating-backend/internal/shared/response"
)

type ReviewHandler struct {
	service service.Service
}

func NewReviewHandler(svc service.Service) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

// GetByBook - GET /api/review/book/:bookId
func (h *ReviewHandler) GetByBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	reviews, err := h.service.GetByBook(c.Request.Context(), bookID)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, reviews)
}

// GetAverageRating - GET /api/review/book/:bookId/average
func (h *ReviewHandler) GetAverageRating(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	avg, err := h.service.GetAverageRating(c.Request.Context(), bookID)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, avg)
}

// Create - POST /api/review (authenticated)
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid review payload", err)
		return
	}

	rv, err := h.service.AddReview(c.Request.Context(), userID, &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, rv)
}
