package generate

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

var errTest = errors.New("upstream exploded")

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)
	h.RegisterRoutes(r.Group("/api"), func(c *gin.Context) { c.Next() })
	return r
}

func TestGenerateEndpointSuccess(t *testing.T) {
	gen := &fakeGenerator{content: "Generated article body with enough words."}
	r := newTestRouter(NewService(testConfig(), gen))

	body := `{"topic":"SEO tips","primaryKeyword":"Website SEO!","tone":"Professional"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Success  bool     `json:"success"`
		Content  string   `json:"content"`
		Metadata Metadata `json:"metadata"`
		Settings Request  `json:"settings"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, true, res.Success)
	assert.Equal(t, gen.content, res.Content)
	assert.Equal(t, "website-seo", res.Metadata.Slug)
	assert.Equal(t, "SEO tips", res.Settings.Topic)
}

func TestGenerateEndpointValidation(t *testing.T) {
	gen := &fakeGenerator{content: "text"}
	r := newTestRouter(NewService(testConfig(), gen))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(`{"topic":"SEO tips"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, gen.calls)

	var res struct {
		Error string `json:"error"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Topic and primary keyword are required", res.Error)
}

func TestGenerateEndpointProviderError(t *testing.T) {
	gen := &fakeGenerator{err: errTest}
	r := newTestRouter(NewService(testConfig(), gen))

	body := `{"topic":"SEO tips","primaryKeyword":"seo"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
