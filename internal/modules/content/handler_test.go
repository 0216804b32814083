package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/soez-labs/blogforge/internal/models"
)

func newTestRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(store))
	h.RegisterRoutes(r.Group("/api"), func(c *gin.Context) { c.Next() })
	return r
}

func TestCreateEndpoint(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	body := `{"title":"T","slug":"t","content":"body"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/content", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Success bool              `json:"success"`
		Blog    *models.BlogModel `json:"blog"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, "t", res.Blog.Slug)
}

func TestCreateEndpointValidation(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/content", strings.NewReader(`{"title":"T"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res struct {
		Error string `json:"error"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Title, slug, and content are required", res.Error)
}

func TestListEndpoint(t *testing.T) {
	store := &fakeStore{blogs: []models.BlogModel{
		{Base: models.Base{ID: "b1"}, Title: "First", Slug: "first", Content: "x"},
		{Base: models.Base{ID: "b2"}, Title: "Second", Slug: "second", Content: "y"},
	}}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/content", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Success bool               `json:"success"`
		Blogs   []models.BlogModel `json:"blogs"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, 2, len(res.Blogs))
}

func TestListEndpointEmptyStore(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/content", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, strings.Contains(w.Body.String(), `"blogs":[]`))

	var res struct {
		Success bool `json:"success"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
}

func TestGetByIDEndpointNotFound(t *testing.T) {
	r := newTestRouter(&fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/content/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var res struct {
		Error string `json:"error"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Blog not found", res.Error)
}

func TestRenderHTMLEndpoint(t *testing.T) {
	store := &fakeStore{blogs: []models.BlogModel{
		{Base: models.Base{ID: "b1"}, Title: "T", Slug: "t", Content: "## Heading\n\n**bold** text"},
	}}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/content/b1/html", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, strings.Contains(w.Body.String(), "<h2"))
	assert.Equal(t, true, strings.Contains(w.Body.String(), "<strong>bold</strong>"))
}

func TestDeleteEndpoint(t *testing.T) {
	store := &fakeStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/content/b1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"b1"}, store.deleted)

	var res struct {
		Success bool `json:"success"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
}
