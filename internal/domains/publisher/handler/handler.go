package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookrating-backend/internal/domains/publisher/model"
	"bookrating-backend/internal/domains/publisher/service"
	"bookrating-backend/internal/shared/response"
)

type PublisherHandler struct {
	service service.Service
}

func NewPublisherHandler(svc service.Service) *PublisherHandler {
	return &PublisherHandler{service: svc}
}

// GetAll - GET /api/publisher
func (h *PublisherHandler) GetAll(c *gin.Context) {
	publishers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, publishers)
}

// GetByID - GET /api/publisher/:id
func (h *PublisherHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid publisher id")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Create - POST /api/publisher
func (h *PublisherHandler) Create(c *gin.Context) {
	var req model.CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid publisher payload", err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// Update - PUT /api/publisher/:id
func (h *PublisherHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid publisher id")
		return
	}

	var req model.UpdatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid publisher payload", err)
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, p)
}

// Delete - DELETE /api/publisher/:id
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid publisher id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Message(c, http.StatusOK, "Publisher deleted successfully.")
}
