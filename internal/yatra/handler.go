package yatra

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 🎯 Create Yatra - POST /yatras
// @Summary Create a yatra
// @Tags Yatras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateYatraRequest true "Request body"
// @Success 201 {object} Yatra
// @Failure 400 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/yatras [post]
func (h *Handler) CreateYatra(c *gin.Context) {
	var req CreateYatraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	y, err := h.Service.CreateYatra(c.Request.Context(), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, y)
}

// ===========================
// 🔍 Get Yatra - GET /yatras/:id
// @Summary Get a yatra
// @Tags Yatras
// @Produce json
// @Security BearerAuth
// @Param id path int true "Yatra ID"
// @Success 200 {object} Yatra
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /api/v1/yatras/{id} [get]
func (h *Handler) GetYatra(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid yatra ID"})
		return
	}

	y, err := h.Service.GetYatra(c.Request.Context(), uint(id))
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, y)
}

// ===========================
// 📄 List Yatras - GET /yatras?active=true
// @Summary List yatras
// @Tags Yatras
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active yatras"
// @Success 200 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /api/v1/yatras [get]
func (h *Handler) ListYatras(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	yatras, err := h.Service.ListYatras(c.Request.Context(), activeOnly)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": yatras})
}

// ===========================
// 🛠 Update Yatra - PUT /yatras/:id
// @Summary Update a yatra
// @Tags Yatras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Yatra ID"
// @Param body body UpdateYatraRequest true "Request body"
// @Success 200 {object} Yatra
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Failure 409 {object} gin.H
// @Router /api/v1/yatras/{id} [put]
func (h *Handler) UpdateYatra(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid yatra ID"})
		return
	}

	var req UpdateYatraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	y, err := h.Service.UpdateYatra(c.Request.Context(), uint(id), &req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, y)
}
