// Package store defines the storage interfaces the services depend on, plus
// their GORM/PostgreSQL implementations. Implementations report missing rows
// as gorm.ErrRecordNotFound and unique-constraint violations as
// gorm.ErrDuplicatedKey so services can translate them without knowing the
// backing engine; tests swap in in-memory fakes honouring the same contract.
package store

import (
	"github.com/google/uuid"

	"github.com/scanventory/scanventory-backend/internal/models"
)

// UserStore persists operator accounts.
type UserStore interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
}

// ProductStore persists inventory records.
type ProductStore interface {
	Create(product *models.Product) error
	FindByID(id uuid.UUID) (*models.Product, error)
	// FindByMaterialOrBarcode returns any product matching either identifier.
	FindByMaterialOrBarcode(material int64, barcode string) (*models.Product, error)
	// List returns products newest-first, filtered to an exact category name
	// when category is non-empty.
	List(category string) ([]models.Product, error)
	SearchMaterial(material int64) ([]models.Product, error)
	// SearchText matches barcode OR description case-insensitively, newest-first.
	SearchText(query string) ([]models.Product, error)
	UpdateCategory(id uuid.UUID, category string) (*models.Product, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
	CountByCategory() ([]CategoryCount, error)
	Recent(limit int) ([]models.Product, error)
	ExistsWithCategory(name string) (bool, error)
}

// CategoryStore persists category rows.
type CategoryStore interface {
	Create(category *models.Category) error
	FindByID(id uuid.UUID) (*models.Category, error)
	FindByName(name string) (*models.Category, error)
	// List returns all categories ordered by name ascending.
	List() ([]models.Category, error)
	Delete(id uuid.UUID) error
}

// CategoryCount is a per-category product tally.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
