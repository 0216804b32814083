package sitemap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/soez-labs/blogforge/internal/models"
)

type fakeStore struct {
	blogs []models.BlogModel
}

func (f *fakeStore) Insert(*models.BlogModel) error                   { return nil }
func (f *fakeStore) List(*string) ([]models.BlogModel, error)         { return f.blogs, nil }
func (f *fakeStore) GetByID(string) (*models.BlogModel, error)        { return nil, nil }
func (f *fakeStore) DeleteByID(string) error                          { return nil }
func (f *fakeStore) ListSlugs() ([]models.BlogModel, error)           { return f.blogs, nil }

func TestSitemap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := &fakeStore{blogs: []models.BlogModel{
		{Base: models.Base{ID: "b1", UpdatedAt: time.Now()}, Slug: "grow-tomatoes"},
	}}
	RegisterRoutes(r, "https://blog.example.test", store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sitemap.xml", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, strings.Contains(w.Body.String(), "<loc>https://blog.example.test</loc>"))
	assert.Equal(t, true, strings.Contains(w.Body.String(), "<loc>https://blog.example.test/blog/grow-tomatoes</loc>"))
}

func TestSitemapEscapesEntities(t *testing.T) {
	got := renderXML([]sitemapURL{
		{Loc: "https://blog.example.test/blog/cats&dogs", LastMod: time.Now(), ChangeFreq: "weekly", Priority: 0.8},
	})
	assert.Equal(t, true, strings.Contains(got, "<loc>https://blog.example.test/blog/cats&amp;dogs</loc>"))
	assert.Equal(t, false, strings.Contains(got, "cats&dogs"))
}
