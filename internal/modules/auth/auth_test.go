package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

// The binding checks run before the service is touched, so a nil DB is
// fine for these.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(nil))
	h.RegisterRoutes(r.Group("/api"), func(c *gin.Context) { c.Next() })
	return r
}

func TestLoginRejectsMissingFields(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"username":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res struct {
		Error string `json:"error"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Username and password are required", res.Error)
}

func TestRegisterRejectsShortPasswordWithSafeMessage(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"username":"admin","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res struct {
		Error string `json:"error"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Username and password are required", res.Error)
	assert.Equal(t, false, strings.Contains(w.Body.String(), "RegisterDTO"))
	assert.Equal(t, false, strings.Contains(w.Body.String(), "validation"))
}
