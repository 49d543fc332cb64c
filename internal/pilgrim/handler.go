package pilgrim

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

// GET /pilgrims/:id
// @Summary Get a pilgrim with held rooms
// @Tags Pilgrims
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pilgrim ID"
// @Success 200 {object} PersonView
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/pilgrims/{id} [get]
func (h *Handler) GetPerson(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pilgrim ID"})
		return
	}

	view, err := h.service.GetPerson(c.Request.Context(), uint(id))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /pilgrims/pnr/:pnr
// @Summary Get a pilgrim by PNR
// @Tags Pilgrims
// @Produce json
// @Security BearerAuth
// @Param pnr path string true "PNR"
// @Success 200 {object} PersonView
// @Failure 404 {object} gin.H
// @Router /api/v1/pilgrims/pnr/{pnr} [get]
func (h *Handler) GetPersonByPNR(c *gin.Context) {
	view, err := h.service.GetPersonByPNR(c.Request.Context(), c.Param("pnr"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /pilgrims?yatra_id=&assignment_status=&search=&page=&limit=
// @Summary List pilgrims
// @Tags Pilgrims
// @Produce json
// @Security BearerAuth
// @Param yatra_id query int false "Filter by yatra"
// @Param assignment_status query string false "none, draft, confirmed or alloted"
// @Param search query string false "Name or PNR"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 20)"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /api/v1/pilgrims [get]
func (h *Handler) ListPersons(c *gin.Context) {
	filter := ListFilter{
		RoomAssignmentStatus: c.Query("assignment_status"),
		Search:               c.Query("search"),
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

	people, total, err := h.service.ListPersons(c.Request.Context(), filter)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": people, "total": total})
}
