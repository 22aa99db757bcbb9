package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scanventory/scanventory-backend/internal/dto"
	"github.com/scanventory/scanventory-backend/internal/models"
	"github.com/scanventory/scanventory-backend/internal/store"
)

// DefaultCategory is applied when a product is created without one.
const DefaultCategory = "Uncategorized"

var (
	// ErrProductExists covers collisions on either material or barcode; the
	// lookup is combined so both report identically.
	ErrProductExists    = errors.New("product with this material number or barcode already exists")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryRequired = errors.New("category is required")
	ErrQueryRequired    = errors.New("search query is required")
)

type ProductService struct {
	products store.ProductStore
}

func NewProductService(products store.ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) Create(req *dto.CreateProductRequest) (*models.Product, error) {
	barcode := strings.TrimSpace(req.Barcode)
	description := strings.TrimSpace(req.Description)

	if req.Material <= 0 {
		return nil, errors.New("material number is required")
	}
	if barcode == "" {
		return nil, errors.New("barcode is required")
	}
	if description == "" {
		return nil, errors.New("description is required")
	}
	if len(description) > 500 {
		return nil, errors.New("description cannot be more than 500 characters")
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = DefaultCategory
	}

	if _, err := s.products.FindByMaterialOrBarcode(req.Material, barcode); err == nil {
		return nil, ErrProductExists
	}

	product := models.Product{
		ID:          uuid.New(),
		Material:    req.Material,
		Barcode:     barcode,
		Description: description,
		Category:    category,
	}

	if err := s.products.Create(&product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProductExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

func (s *ProductService) List(category string) ([]models.Product, error) {
	return s.products.List(category)
}

// Search routes an all-numeric query to an exact material match, anything else
// to a case-insensitive substring match over barcode and description. An
// all-digit barcode is therefore never found by substring search; that mirrors
// how the scanner client has always behaved and stays as-is.
func (s *ProductService) Search(query string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}

	if material, err := strconv.ParseInt(query, 10, 64); err == nil {
		return s.products.SearchMaterial(material)
	}

	return s.products.SearchText(query)
}

func (s *ProductService) UpdateCategory(id uuid.UUID, category string) (*models.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrCategoryRequired
	}

	product, err := s.products.UpdateCategory(id, category)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product category: %w", err)
	}

	return product, nil
}

func (s *ProductService) Delete(id uuid.UUID) error {
	if err := s.products.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *ProductService) GetByID(id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return product, nil
}
