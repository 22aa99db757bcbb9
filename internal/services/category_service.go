package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scanventory/scanventory-backend/internal/models"
	"github.com/scanventory/scanventory-backend/internal/store"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryExists       = errors.New("category with this name already exists")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryInUse        = errors.New("cannot delete category: it is being used by one or more products")
)

type CategoryService struct {
	categories store.CategoryStore
	products   store.ProductStore
}

func NewCategoryService(categories store.CategoryStore, products store.ProductStore) *CategoryService {
	return &CategoryService{categories: categories, products: products}
}

func (s *CategoryService) List() ([]models.Category, error) {
	return s.categories.List()
}

func (s *CategoryService) Create(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	if len(name) > 100 {
		return nil, errors.New("category name cannot be more than 100 characters")
	}

	if _, err := s.categories.FindByName(name); err == nil {
		return nil, ErrCategoryExists
	}

	category := models.Category{ID: uuid.New(), Name: name}
	if err := s.categories.Create(&category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

func (s *CategoryService) GetByID(id uuid.UUID) (*models.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return category, nil
}

// Delete removes a category unless any product still carries its name. The
// in-use check is a point-in-time scan, not a transaction; a product created
// between check and delete keeps its label either way since the category
// field is a plain string.
func (s *CategoryService) Delete(id uuid.UUID) (*models.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}

	inUse, err := s.products.ExistsWithCategory(category.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category usage: %w", err)
	}
	if inUse {
		return nil, ErrCategoryInUse
	}

	if err := s.categories.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return category, nil
}
