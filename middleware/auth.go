package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vinaythakkar13/yatra-backend/config"
	"github.com/vinaythakkar13/yatra-backend/internal/auditlog"
)

// Roles that act as operators. Any other role, or no token at all, is a
// self-service caller.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

const actorKey = "actor"

var (
	errMissingHeader = errors.New("missing Authorization header")
	errBadHeader     = errors.New("invalid Authorization header")
	errBadToken      = errors.New("invalid token")
)

// AuthMiddleware requires a valid bearer token and stores the resolved actor.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := actorFromRequest(c, cfg.JWTAccessSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// OptionalAuth resolves the actor when a token is sent. Requests without an
// Authorization header pass through as anonymous self-service calls; a
// token that is present but invalid is still rejected.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := actorFromRequest(c, cfg.JWTAccessSecret)
		if errors.Is(err, errMissingHeader) {
			c.Next()
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireOperator must run after AuthMiddleware.
func RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		if actor == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		if !actor.IsOperator() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "operator access required"})
			return
		}
		c.Next()
	}
}

// ActorFromContext returns the caller resolved by AuthMiddleware or
// OptionalAuth, or nil for anonymous requests.
func ActorFromContext(c *gin.Context) *auditlog.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*auditlog.Actor)
	return actor
}

func actorFromRequest(c *gin.Context, secret string) (*auditlog.Actor, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, errMissingHeader
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errBadHeader
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errBadToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errBadToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil, errors.New("user_id missing in token")
	}
	role, _ := claims["role"].(string)

	actor := &auditlog.Actor{ID: uint(userID), Kind: auditlog.ActorSelfService}
	switch role {
	case RoleSuperAdmin, RoleAdmin:
		actor.Kind = auditlog.ActorOperator
	}
	return actor, nil
}

// AuthFromQuery accepts the token as ?token= for EventSource clients, which
// cannot set headers, then behaves like AuthMiddleware.
func AuthFromQuery(cfg *config.Config) gin.HandlerFunc {
	next := AuthMiddleware(cfg)
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			if token := c.Query("token"); token != "" {
				c.Request.Header.Set("Authorization", "Bearer "+token)
			}
		}
		next(c)
	}
}
