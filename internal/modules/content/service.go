// Package content stores and serves saved blog records.
package content

import (
	"github.com/soez-labs/blogforge/internal/models"
	"github.com/soez-labs/blogforge/internal/pkg/apperrors"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create persists a new blog record. Title, slug, and content are
// required; everything else is stored as provided.
func (s *Service) Create(dto *CreateBlogDTO) (*models.BlogModel, error) {
	if dto.Title == "" || dto.Slug == "" || dto.Content == "" {
		return nil, apperrors.Validation("Title, slug, and content are required")
	}

	blog := models.BlogModel{
		Title:           dto.Title,
		Slug:            dto.Slug,
		Content:         dto.Content,
		MetaDescription: dto.MetaDescription,
		Topic:           dto.Topic,
		PrimaryKeyword:  dto.PrimaryKeyword,
		Tone:            dto.Tone,
		ArticleType:     dto.ArticleType,
		WordCount:       dto.WordCount,
	}
	if err := s.store.Insert(&blog); err != nil {
		return nil, apperrors.Store("Failed to save blog. Please try again.", err)
	}
	return &blog, nil
}

// List returns all records, newest first.
func (s *Service) List() ([]models.BlogModel, error) {
	blogs, err := s.store.List(nil)
	if err != nil {
		return nil, apperrors.Store("Failed to fetch blogs.", err)
	}
	if blogs == nil {
		blogs = []models.BlogModel{}
	}
	return blogs, nil
}

func (s *Service) GetByID(id string) (*models.BlogModel, error) {
	blog, err := s.store.GetByID(id)
	if err != nil {
		return nil, apperrors.Store("Failed to fetch blog.", err)
	}
	if blog == nil {
		return nil, apperrors.NotFound("Blog not found")
	}
	return blog, nil
}

// DeleteByID removes a record. Deleting an id that does not exist is
// not an error.
func (s *Service) DeleteByID(id string) error {
	if err := s.store.DeleteByID(id); err != nil {
		return apperrors.Store("Failed to delete blog", err)
	}
	return nil
}
