package reports

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
)

type Handler struct {
	service ReportService
}

func NewHandler(service ReportService) *Handler {
	return &Handler{service: service}
}

// GetRoomingList handles GET /hotels/:id/rooming-list?format=excel|pdf|csv
// Without a format the rooming list is returned as JSON.
// @Summary Rooming list of a hotel
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Param format query string false "excel, csv or pdf; JSON when omitted"
// @Success 200 {object} RoomingList
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/hotels/{id}/rooming-list [get]
func (h *Handler) GetRoomingList(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || hotelID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hotel ID"})
		return
	}

	format := c.Query("format")
	if format == "" {
		list, err := h.service.RoomingList(c.Request.Context(), uint(hotelID))
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	file, err := h.service.ExportRoomingList(c.Request.Context(), uint(hotelID), format)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	sendFile(c, file)
}

// GetRoster handles GET /yatras/:id/registrations/export?format=&status=
// @Summary Registration roster of a yatra
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Yatra ID"
// @Param format query string false "excel, csv or pdf; JSON when omitted"
// @Param status query string false "Filter by status"
// @Success 200 {object} Roster
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/yatras/{id}/registrations/export [get]
func (h *Handler) GetRoster(c *gin.Context) {
	yatraID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || yatraID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid yatra ID"})
		return
	}
	status := c.Query("status")

	format := c.Query("format")
	if format == "" {
		roster, err := h.service.Roster(c.Request.Context(), uint(yatraID), status)
		if err != nil {
			apperror.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, roster)
		return
	}

	file, err := h.service.ExportRoster(c.Request.Context(), uint(yatraID), status, format)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	sendFile(c, file)
}

func sendFile(c *gin.Context, file *ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
	c.Data(http.StatusOK, file.MIME, file.Data)
}
