package apperror

import (
	"github.com/gin-gonic/gin"

	"github.com/vinaythakkar13/yatra-backend/logger"
)

// Respond writes err as a JSON error body with the mapped status code.
// Unclassified errors are logged and rendered with a generic message.
func Respond(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if KindOf(err) == "" {
		logger.WithFields(map[string]interface{}{
			"request_id": c.GetString("request_id"),
			"route":      c.Request.Method + " " + c.FullPath(),
		}).WithError(err).Error("request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
