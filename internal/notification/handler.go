package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	client *redis.Client
}

func NewHandler(client *redis.Client) *Handler {
	return &Handler{client: client}
}

// GET /api/v1/yatras/:id/registrations/stream (SSE)
// @Summary Stream registration events of a yatra (SSE)
// @Tags Notifications
// @Produce text/event-stream
// @Security BearerAuth
// @Param id path int true "Yatra ID"
// @Param token query string false "Bearer token for EventSource clients"
// @Success 200 {string} string "event stream"
// @Failure 401 {object} gin.H
// @Failure 403 {object} gin.H
// @Failure 503 {object} gin.H
// @Router /api/v1/yatras/{id}/registrations/stream [get]
func (h *Handler) StreamRegistrations(c *gin.Context) {
	yatraID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || yatraID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid yatra ID"})
		return
	}
	if h.client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live updates are unavailable"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}

	sub := h.client.Subscribe(c.Request.Context(), YatraChannel(uint(yatraID)))
	defer sub.Close()

	_, _ = c.Writer.Write([]byte(":ok\n\n"))
	flusher.Flush()

	ch := sub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			_, _ = c.Writer.Write([]byte("event: registration\n"))
			_, _ = c.Writer.Write([]byte("data: " + msg.Payload + "\n\n"))
			flusher.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
