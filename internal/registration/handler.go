package registration

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
	"github.com/vinaythakkar13/yatra-backend/middleware"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func registrationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration ID"})
		return 0, false
	}
	return uint(id), true
}

// bindReview reads an optional {reason, comments} body.
func bindReview(c *gin.Context) (ReviewRequest, bool) {
	var req ReviewRequest
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return req, false
	}
	return req, true
}

// ===========================
// 🎯 Create Registration - POST /registrations
// @Summary Register a booking
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRegistrationRequest true "Request body"
// @Success 201 {object} Registration
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/registrations [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	reg, err := h.service.Create(c.Request.Context(), &req, middleware.ActorFromContext(c), middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

// ===========================
// ✂️ Split Registration - POST /registrations/split
// @Summary Split a booking under an internal PNR
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRegistrationRequest true "Request body"
// @Success 201 {object} Registration
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/registrations/split [post]
func (h *Handler) CreateSplit(c *gin.Context) {
	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	reg, err := h.service.CreateSplit(c.Request.Context(), &req, middleware.ActorFromContext(c), middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

// ===========================
// 🛠 Update Registration - PUT /registrations/:id
// @Summary Edit a registration
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param body body UpdateRegistrationRequest true "Request body"
// @Success 200 {object} Registration
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/registrations/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}
	var req UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	reg, err := h.service.Update(c.Request.Context(), id, &req, middleware.ActorFromContext(c), middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// ===========================
// ❌ Cancel Registration - POST /registrations/:id/cancel
// @Summary Cancel a registration
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param body body CancelRequest true "Request body"
// @Success 200 {object} Registration
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/registrations/{id}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}
	var req CancelRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
			return
		}
	}

	reg, err := h.service.Cancel(c.Request.Context(), id, &req, middleware.ActorFromContext(c), middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// ===========================
// ✅ Approve - POST /registrations/:id/approve
// @Summary Approve a pending registration
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param body body ReviewRequest true "Request body"
// @Success 200 {object} Registration
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/registrations/{id}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}
	req, ok := bindReview(c)
	if !ok {
		return
	}

	reg, err := h.service.Approve(c.Request.Context(), id, req.Comments, middleware.ActorFromContext(c), middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// ===========================
// 🚫 Reject - POST /registrations/:id/reject
// @Summary Reject a pending registration
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param body body ReviewRequest true "Request body"
// @Success 200 {object} Registration
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/registrations/{id}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}
	req, ok := bindReview(c)
	if !ok {
		return
	}

	reg, err := h.service.Reject(c.Request.Context(), id, req.Reason, req.Comments, middleware.ActorFromContext(c), middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// ===========================
// 📄 Documents - POST /registrations/:id/documents/approve
// @Summary Approve travel documents
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param body body ReviewRequest true "Request body"
// @Success 200 {object} Registration
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/registrations/{id}/documents/approve [post]
func (h *Handler) ApproveDocument(c *gin.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}
	req, ok := bindReview(c)
	if !ok {
		return
	}

	reg, err := h.service.ApproveDocument(c.Request.Context(), id, req.Comments, middleware.ActorFromContext(c), middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// POST /registrations/:id/documents/reject
// @Summary Reject travel documents and cancel the registration
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param body body ReviewRequest true "Request body"
// @Success 200 {object} Registration
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/registrations/{id}/documents/reject [post]
func (h *Handler) RejectDocument(c *gin.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}
	req, ok := bindReview(c)
	if !ok {
		return
	}

	reg, err := h.service.RejectDocument(c.Request.Context(), id, req.Reason, req.Comments, middleware.ActorFromContext(c), middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// ===========================
// 🎫 Ticket Type - PATCH /registrations/:id/ticket-type
// @Summary Set the ticket classification
// @Tags Registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param body body TicketTypeRequest true "Request body"
// @Success 200 {object} Registration
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/registrations/{id}/ticket-type [patch]
func (h *Handler) UpdateTicketType(c *gin.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}
	var req TicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	reg, err := h.service.UpdateTicketType(c.Request.Context(), id, req.TicketType, middleware.ActorFromContext(c), middleware.OriginFromContext(c))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// ===========================
// 🔍 Get Registration - GET /registrations/:id
// @Summary Get a registration
// @Tags Registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 200 {object} Registration
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/registrations/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}
	reg, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// ===========================
// 📄 List Registrations - GET /registrations?yatra_id=&status=&document_status=&search=&page=&limit=
// @Summary List registrations
// @Tags Registrations
// @Produce json
// @Security BearerAuth
// @Param yatra_id query int false "Filter by yatra"
// @Param status query string false "pending, approved, rejected or cancelled"
// @Param document_status query string false "pending, approved or rejected"
// @Param search query string false "PNR or name"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 20, max 100)"
// @Success 200 {object} PaginatedRegistrations
// @Failure 400 {object} gin.H
// @Router /api/v1/registrations [get]
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Status:         c.Query("status"),
		DocumentStatus: c.Query("document_status"),
		Search:         c.Query("search"),
	}
	if v := c.Query("yatra_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid yatra_id"})
			return
		}
		filter.YatraID = uint(id)
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ===========================
// 🔎 PNR Lookup - GET /pnr/:pnr
// @Summary Look up the latest registration and rooms for a PNR
// @Tags Registrations
// @Produce json
// @Security BearerAuth
// @Param pnr path string true "PNR"
// @Success 200 {object} PnrResolution
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/pnr/{pnr} [get]
func (h *Handler) ResolveByPnr(c *gin.Context) {
	res, err := h.service.ResolveByPnr(c.Request.Context(), c.Param("pnr"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /pnr/:pnr/splits
// @Summary Count active splits of a booking
// @Tags Registrations
// @Produce json
// @Security BearerAuth
// @Param pnr path string true "Original PNR"
// @Success 200 {object} SplitSummary
// @Failure 400 {object} gin.H
// @Router /api/v1/pnr/{pnr}/splits [get]
func (h *Handler) CountSplits(c *gin.Context) {
	res, err := h.service.CountSplitsByOriginalPnr(c.Request.Context(), c.Param("pnr"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
