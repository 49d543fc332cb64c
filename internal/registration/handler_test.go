package registration

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vinaythakkar13/yatra-backend/config"
	"github.com/vinaythakkar13/yatra-backend/internal/auditlog"
	"github.com/vinaythakkar13/yatra-backend/middleware"
)

const testSecret = "registration-test-secret"

func signedToken(t *testing.T, userID uint, role string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func publicRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.Use(middleware.OptionalAuth(&config.Config{JWTAccessSecret: testSecret}))
	r.PUT("/registrations/:id", h.Update)
	r.POST("/registrations/:id/cancel", h.Cancel)
	return r
}

func send(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicChangesRequireOwnership(t *testing.T) {
	svc, repo := newTestService()
	reg, err := svc.Create(context.Background(), threePersonRequest("4829635210"), nil, auditlog.Origin{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	r := publicRouter(svc)
	path := "/registrations/1"
	if reg.ID != 1 {
		t.Fatalf("registration id = %d, want 1", reg.ID)
	}

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		{"anonymous cancel without proof", http.MethodPost, path + "/cancel", "", "", http.StatusBadRequest},
		{"anonymous cancel with wrong number", http.MethodPost, path + "/cancel", "",
			`{"owner":{"pnr":"4829635210","whatsapp_number":"1111111111"}}`, http.StatusNotFound},
		{"self-service edit of someone else's registration", http.MethodPut, path, signedToken(t, 999, "pilgrim"),
			`{"whatsapp_number":"0000000000","owner":{"pnr":"1234567890","whatsapp_number":"9876543210"}}`, http.StatusNotFound},
		{"self-service edit without proof", http.MethodPut, path, signedToken(t, 999, "pilgrim"),
			`{"whatsapp_number":"0000000000"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := send(r, tt.method, tt.path, tt.token, tt.body)
			if w.Code != tt.want {
				t.Fatalf("status = %d body = %s, want %d", w.Code, w.Body.String(), tt.want)
			}
		})
	}

	stored := repo.state.regs[reg.ID]
	if stored.Status != StatusPending || stored.WhatsappNumber != "9876543210" {
		t.Fatalf("refused requests changed the registration: status=%s whatsapp=%s", stored.Status, stored.WhatsappNumber)
	}
	if len(repo.state.logs) != 1 {
		t.Fatalf("refused requests were logged: %v", actions(repo.state.logs))
	}

	w := send(r, http.MethodPut, path, signedToken(t, 999, "pilgrim"),
		`{"boarding_city":"Ahmedabad","owner":{"pnr":" 4829635210 ","whatsapp_number":"9876543210"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("owner edit status = %d body = %s", w.Code, w.Body.String())
	}
	if got := repo.state.regs[reg.ID].BoardingCity; got != "Ahmedabad" {
		t.Errorf("boarding city = %q", got)
	}

	w = send(r, http.MethodPost, path+"/cancel", "",
		`{"reason":"change of plans","owner":{"pnr":"4829635210","whatsapp_number":"9876543210"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("owner cancel status = %d body = %s", w.Code, w.Body.String())
	}
	if got := repo.state.regs[reg.ID].Status; got != StatusCancelled {
		t.Fatalf("status = %s, want cancelled", got)
	}
}

func TestOperatorsSkipOwnershipProof(t *testing.T) {
	svc, repo := newTestService()
	reg, _ := svc.Create(context.Background(), threePersonRequest("4829635210"), nil, auditlog.Origin{})
	r := publicRouter(svc)

	w := send(r, http.MethodPost, "/registrations/1/cancel", signedToken(t, 7, middleware.RoleAdmin), `{"reason":"duplicate"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	got := repo.state.regs[reg.ID]
	if got.Status != StatusCancelled || got.CancelledByID == nil || *got.CancelledByID != 7 {
		t.Fatalf("operator cancel not recorded: %+v", got)
	}
}
