package content

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/soez-labs/blogforge/internal/models"
	"github.com/soez-labs/blogforge/internal/pkg/apperrors"
)

type fakeStore struct {
	blogs    []models.BlogModel
	inserted []*models.BlogModel
	deleted  []string
	err      error
}

func (f *fakeStore) Insert(blog *models.BlogModel) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, blog)
	return nil
}

func (f *fakeStore) List(userID *string) ([]models.BlogModel, error) {
	return f.blogs, f.err
}

func (f *fakeStore) GetByID(id string) (*models.BlogModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.blogs {
		if f.blogs[i].ID == id {
			return &f.blogs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) DeleteByID(id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) ListSlugs() ([]models.BlogModel, error) {
	return f.blogs, f.err
}

func TestCreateRequiredFields(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	cases := []CreateBlogDTO{
		{Slug: "s", Content: "c"},
		{Title: "t", Content: "c"},
		{Title: "t", Slug: "s"},
	}
	for _, dto := range cases {
		_, err := svc.Create(&dto)
		assert.Equal(t, true, apperrors.IsKind(err, apperrors.KindValidation))
	}
	assert.Equal(t, 0, len(store.inserted))
}

func TestCreateSuccess(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	meta := "desc"
	words := 1200
	blog, err := svc.Create(&CreateBlogDTO{
		Title:           "How to grow tomatoes",
		Slug:            "grow-tomatoes",
		Content:         "## Intro\n\nbody",
		MetaDescription: &meta,
		WordCount:       &words,
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(store.inserted))
	assert.Equal(t, "grow-tomatoes", blog.Slug)
	assert.Equal(t, &words, blog.WordCount)
}

func TestCreateStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	svc := NewService(store)

	_, err := svc.Create(&CreateBlogDTO{Title: "t", Slug: "s", Content: "c"})
	assert.Equal(t, true, apperrors.IsKind(err, apperrors.KindStore))
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.GetByID("missing")
	assert.Equal(t, true, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestDeleteMissingIDIsNoError(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	assert.Equal(t, nil, svc.DeleteByID("never-existed"))
	assert.Equal(t, []string{"never-existed"}, store.deleted)
}
