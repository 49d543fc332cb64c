package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func TestSwaggerDocServed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var doc struct {
		Swagger string                                `json:"swagger"`
		Info    struct{ Title string }                `json:"info"`
		Paths   map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json is not valid JSON: %v", err)
	}
	if doc.Swagger != "2.0" || doc.Info.Title != SwaggerInfo.Title {
		t.Fatalf("swagger=%q title=%q", doc.Swagger, doc.Info.Title)
	}

	for path, method := range map[string]string{
		"/api/v1/registrations":             "post",
		"/api/v1/registrations/{id}/cancel": "post",
		"/api/v1/pilgrims/{id}/rooms":       "put",
		"/api/v1/hotels/{id}/rooming-list":  "get",
		"/api/v1/pnr/{pnr}":                 "get",
		"/api/v1/registrations/{id}/reject": "post",
	} {
		if _, ok := doc.Paths[path][method]; !ok {
			t.Errorf("missing %s %s", method, path)
		}
	}
}
