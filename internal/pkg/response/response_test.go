package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/soez-labs/blogforge/internal/pkg/apperrors"
)

func TestErrorKeepsCauseOnContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/content", nil)

	cause := errors.New("dial tcp: connection refused")
	Error(c, apperrors.Store("Failed to fetch blogs.", cause))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, true, strings.Contains(w.Body.String(), "Failed to fetch blogs."))
	assert.Equal(t, false, strings.Contains(w.Body.String(), "connection refused"))

	assert.Equal(t, 1, len(c.Errors))
	assert.Equal(t, true, strings.Contains(c.Errors.String(), "connection refused"))
}

func TestErrorHidesUnknownCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/content", nil)

	Error(c, errors.New("gorm: bad things"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, true, strings.Contains(w.Body.String(), "An unexpected error occurred"))
	assert.Equal(t, false, strings.Contains(w.Body.String(), "gorm"))
	assert.Equal(t, 1, len(c.Errors))
}
