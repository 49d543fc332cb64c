package auditlog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetRegistrationLogs handles GET /registrations/:id/logs
// Query: action, page, limit.
// @Summary Get the audit trail of a registration
// @Tags RegistrationLogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param action query string false "Filter by action"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 20)"
// @Success 200 {object} PaginatedLogs
// @Failure 400 {object} gin.H
// @Router /api/v1/registrations/{id}/logs [get]
func (h *Handler) GetRegistrationLogs(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID"})
		return
	}

	filter := LogFilter{
		RegistrationID: uint(id),
		Action:         c.Query("action"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = limit
	}

	result, err := h.service.GetLogs(c.Request.Context(), filter)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLogByID handles GET /registration-logs/:id
// @Summary Get one audit entry
// @Tags RegistrationLogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Log ID"
// @Success 200 {object} RegistrationLog
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/registration-logs/{id} [get]
func (h *Handler) GetLogByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration log ID"})
		return
	}

	log, err := h.service.GetLogByID(c.Request.Context(), uint(id))
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}
