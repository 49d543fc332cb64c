package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vinaythakkar13/yatra-backend/internal/auditlog"
)

const clientIPKey = "client_ip"

// AuditMiddleware captures the caller's address once per request so every
// log entry written while serving it carries the same provenance.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(clientIPKey, clientIP(c))
		c.Next()
	}
}

// clientIP prefers proxy headers over RemoteAddr.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}
	for _, h := range []string{"X-Real-Ip", "CF-Connecting-IP"} {
		if v := strings.TrimSpace(c.GetHeader(h)); v != "" && net.ParseIP(v) != nil {
			return v
		}
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}

// OriginFromContext returns the request provenance recorded in log entries.
func OriginFromContext(c *gin.Context) auditlog.Origin {
	ip := c.GetString(clientIPKey)
	if ip == "" {
		ip = clientIP(c)
	}
	return auditlog.Origin{
		IPAddress: ip,
		UserAgent: c.Request.UserAgent(),
	}
}
