package assignment

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

func parseID(c *gin.Context, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + what + " ID"})
		return 0, false
	}
	return uint(id), true
}

// POST /pilgrims/:id/rooms
// @Summary Assign rooms to a pilgrim
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pilgrim ID"
// @Param body body AssignRequest true "Request body"
// @Success 200 {object} AssignResult
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/pilgrims/{id}/rooms [post]
func (h *Handler) Assign(c *gin.Context) {
	personID, ok := parseID(c, "pilgrim")
	if !ok {
		return
	}
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	result, err := h.service.Assign(c.Request.Context(), personID, req.Rooms)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PUT /pilgrims/:id/rooms
// @Summary Replace the rooms held by a pilgrim
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pilgrim ID"
// @Param body body AssignRequest true "Request body"
// @Success 200 {object} AssignResult
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/pilgrims/{id}/rooms [put]
func (h *Handler) Reassign(c *gin.Context) {
	personID, ok := parseID(c, "pilgrim")
	if !ok {
		return
	}
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	result, err := h.service.Reassign(c.Request.Context(), personID, req.Rooms)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DELETE /pilgrims/:id/rooms
// @Summary Release every room held by a pilgrim
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pilgrim ID"
// @Success 200 {object} ReleaseResult
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/pilgrims/{id}/rooms [delete]
func (h *Handler) Release(c *gin.Context) {
	personID, ok := parseID(c, "pilgrim")
	if !ok {
		return
	}

	result, err := h.service.Release(c.Request.Context(), personID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /yatras/:id/assignments/finalize
// @Summary Confirm all draft assignments of a yatra
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Yatra ID"
// @Success 200 {object} FinalizeResult
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/yatras/{id}/assignments/finalize [post]
func (h *Handler) FinalizeDraftAssignments(c *gin.Context) {
	yatraID, ok := parseID(c, "yatra")
	if !ok {
		return
	}

	result, err := h.service.FinalizeDraftAssignments(c.Request.Context(), yatraID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /hotels/:id/recompute
// @Summary Recount a hotel's occupancy
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Success 200 {object} hotel.Aggregates
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/hotels/{id}/recompute [post]
func (h *Handler) RecomputeHotelAggregates(c *gin.Context) {
	hotelID, ok := parseID(c, "hotel")
	if !ok {
		return
	}

	agg, err := h.service.RecomputeHotelAggregates(c.Request.Context(), hotelID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, agg)
}
