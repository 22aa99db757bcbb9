package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scanventory/scanventory-backend/internal/models"
)

type productStore struct {
	db *gorm.DB
}

// NewProductStore returns a PostgreSQL-backed ProductStore.
func NewProductStore(db *gorm.DB) ProductStore {
	return &productStore{db: db}
}

func (s *productStore) Create(product *models.Product) error {
	return s.db.Create(product).Error
}

func (s *productStore) FindByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productStore) FindByMaterialOrBarcode(material int64, barcode string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("material = ? OR barcode = ?", material, barcode).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productStore) List(category string) ([]models.Product, error) {
	query := s.db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *productStore) SearchMaterial(material int64) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("material = ?", material).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *productStore) SearchText(query string) ([]models.Product, error) {
	pattern := "%" + query + "%"

	var products []models.Product
	err := s.db.Where("barcode ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *productStore) UpdateCategory(id uuid.UUID, category string) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&product).Update("category", category).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *productStore) Count() (int64, error) {
	var total int64
	if err := s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *productStore) CountByCategory() ([]CategoryCount, error) {
	var counts []CategoryCount
	err := s.db.Model(&models.Product{}).
		Select("category AS name, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *productStore) Recent(limit int) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *productStore) ExistsWithCategory(name string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Product{}).
		Where("category = ?", name).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
