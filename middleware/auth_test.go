package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vinaythakkar13/yatra-backend/config"
	"github.com/vinaythakkar13/yatra-backend/internal/auditlog"
)

const secret = "middleware-test-secret"

var testConfig = &config.Config{JWTAccessSecret: secret}

func token(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

// whoami echoes the resolved actor, or null.
func whoami(c *gin.Context) {
	c.JSON(http.StatusOK, ActorFromContext(c))
}

func do(r *gin.Engine, target, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMapsRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testConfig), whoami)

	tests := []struct {
		role string
		want auditlog.ActorKind
	}{
		{RoleSuperAdmin, auditlog.ActorOperator},
		{RoleAdmin, auditlog.ActorOperator},
		{"pilgrim", auditlog.ActorSelfService},
		{"", auditlog.ActorSelfService},
	}
	for _, tt := range tests {
		t.Run("role "+tt.role, func(t *testing.T) {
			w := do(r, "/me", token(t, jwt.MapClaims{"user_id": 42, "role": tt.role}, secret))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
			}
			var actor auditlog.Actor
			if err := json.Unmarshal(w.Body.Bytes(), &actor); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if actor.ID != 42 || actor.Kind != tt.want {
				t.Fatalf("actor = %+v, want id 42 kind %s", actor, tt.want)
			}
		})
	}
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testConfig), whoami)

	expired := jwt.MapClaims{"user_id": 42, "role": RoleAdmin, "exp": time.Now().Add(-time.Hour).Unix()}
	tests := []struct {
		name   string
		bearer string
	}{
		{"missing", ""},
		{"wrong key", token(t, jwt.MapClaims{"user_id": 42, "role": RoleAdmin}, "other-secret")},
		{"expired", token(t, expired, secret)},
		{"no user id", token(t, jwt.MapClaims{"role": RoleAdmin}, secret)},
		{"garbage", "not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(r, "/me", tt.bearer); w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", OptionalAuth(testConfig), whoami)

	w := do(r, "/me", "")
	if w.Code != http.StatusOK || w.Body.String() != "null" {
		t.Fatalf("anonymous: status = %d body = %s", w.Code, w.Body.String())
	}

	w = do(r, "/me", token(t, jwt.MapClaims{"user_id": 42}, "other-secret"))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("invalid token: status = %d, want 401", w.Code)
	}

	w = do(r, "/me", token(t, jwt.MapClaims{"user_id": 5, "role": "pilgrim"}, secret))
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d", w.Code)
	}
}

func TestAuthFromQueryRequiresOperator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/stream", AuthFromQuery(testConfig), RequireOperator(), whoami)

	admin := token(t, jwt.MapClaims{"user_id": 7, "role": RoleAdmin}, secret)
	pilgrim := token(t, jwt.MapClaims{"user_id": 9, "role": "pilgrim"}, secret)

	tests := []struct {
		name   string
		target string
		bearer string
		want   int
	}{
		{"operator via query", "/stream?token=" + admin, "", http.StatusOK},
		{"operator via header", "/stream", admin, http.StatusOK},
		{"self-service via query", "/stream?token=" + pilgrim, "", http.StatusForbidden},
		{"no token", "/stream", "", http.StatusUnauthorized},
		{"bad query token", "/stream?token=nope", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(r, tt.target, tt.bearer); w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequireOperatorWithoutActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ops", RequireOperator(), whoami)
	if w := do(r, "/ops", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != incoming || w.Body.String() != incoming {
		t.Fatalf("request id = %q / %q, want %q", got, w.Body.String(), incoming)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	got := w.Header().Get(RequestIDHeader)
	if got == "<script>" {
		t.Fatalf("unparseable request id was echoed")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("generated request id %q is not a uuid: %v", got, err)
	}
}
