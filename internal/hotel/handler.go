package hotel

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

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// POST /hotels
// @Summary Create a hotel with its floor layout
// @Tags Hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateHotelRequest true "Request body"
// @Success 201 {object} Hotel
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/hotels [post]
func (h *Handler) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	hotel, err := h.service.CreateHotel(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

// GET /hotels?yatra_id=
// @Summary List hotels of a yatra
// @Tags Hotels
// @Produce json
// @Security BearerAuth
// @Param yatra_id query int false "Filter by yatra"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /api/v1/hotels [get]
func (h *Handler) ListHotels(c *gin.Context) {
	var yatraID uint
	if v := c.Query("yatra_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid yatra_id"})
			return
		}
		yatraID = uint(id)
	}

	hotels, err := h.service.ListHotels(c.Request.Context(), yatraID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": hotels})
}

// GET /hotels/:id
// @Summary Get a hotel with its rooms
// @Tags Hotels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Success 200 {object} Hotel
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/hotels/{id} [get]
func (h *Handler) GetHotel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	hotel, err := h.service.GetHotel(c.Request.Context(), id)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// PUT /hotels/:id
// @Summary Update hotel details
// @Tags Hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Param body body UpdateHotelRequest true "Request body"
// @Success 200 {object} Hotel
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/hotels/{id} [put]
func (h *Handler) UpdateHotel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	hotel, err := h.service.UpdateHotel(c.Request.Context(), id, &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// PUT /hotels/:id/layout
// @Summary Replace the floor layout of a vacant hotel
// @Tags Hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Param body body UpdateLayoutRequest true "Request body"
// @Success 200 {object} Hotel
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/hotels/{id}/layout [put]
func (h *Handler) UpdateLayout(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	hotel, err := h.service.UpdateLayout(c.Request.Context(), id, &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// DELETE /hotels/:id
// @Summary Delete a vacant hotel
// @Tags Hotels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Success 200 {object} gin.H
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/hotels/{id} [delete]
func (h *Handler) DeleteHotel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteHotel(c.Request.Context(), id); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hotel deleted"})
}

// PUT /rooms/:id
// @Summary Update a room
// @Tags Hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param body body UpdateRoomRequest true "Request body"
// @Success 200 {object} Room
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/rooms/{id} [put]
func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), id, &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}
