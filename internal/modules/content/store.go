package content

import (
	"errors"

	"gorm.io/gorm"

	"github.com/soez-labs/blogforge/internal/models"
)

// Store persists blog records. The gorm implementation is the only one
// used in production; tests substitute fakes.
type Store interface {
	Insert(blog *models.BlogModel) error
	List(userID *string) ([]models.BlogModel, error)
	GetByID(id string) (*models.BlogModel, error)
	DeleteByID(id string) error
	ListSlugs() ([]models.BlogModel, error)
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Insert(blog *models.BlogModel) error {
	return s.db.Create(blog).Error
}

// List returns records newest first. A nil userID returns everything;
// otherwise only that user's records.
func (s *gormStore) List(userID *string) ([]models.BlogModel, error) {
	tx := s.db.Model(&models.BlogModel{}).Order("created_at DESC")
	if userID != nil {
		tx = tx.Where("user_id = ?", *userID)
	}
	blogs := make([]models.BlogModel, 0)
	if err := tx.Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *gormStore) GetByID(id string) (*models.BlogModel, error) {
	var blog models.BlogModel
	if err := s.db.First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

func (s *gormStore) DeleteByID(id string) error {
	return s.db.Delete(&models.BlogModel{}, "id = ?", id).Error
}

// ListSlugs returns id, slug, and timestamps only, newest first. Used by
// the sitemap.
func (s *gormStore) ListSlugs() ([]models.BlogModel, error) {
	var blogs []models.BlogModel
	err := s.db.Model(&models.BlogModel{}).
		Select("id", "slug", "created_at", "updated_at").
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}
