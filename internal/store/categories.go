package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scanventory/scanventory-backend/internal/models"
)

type categoryStore struct {
	db *gorm.DB
}

// NewCategoryStore returns a PostgreSQL-backed CategoryStore.
func NewCategoryStore(db *gorm.DB) CategoryStore {
	return &categoryStore{db: db}
}

func (s *categoryStore) Create(category *models.Category) error {
	return s.db.Create(category).Error
}

func (s *categoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryStore) FindByName(name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryStore) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *categoryStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
