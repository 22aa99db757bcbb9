// Package testutil provides in-memory store implementations for tests. They
// honour the same error contract as the PostgreSQL stores: missing rows come
// back as gorm.ErrRecordNotFound and uniqueness violations as
// gorm.ErrDuplicatedKey.
package testutil

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scanventory/scanventory-backend/internal/models"
	"github.com/scanventory/scanventory-backend/internal/store"
)

// MemoryUserStore is an in-memory store.UserStore.
type MemoryUserStore struct {
	mu    sync.Mutex
	Users []models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.Users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	stampNew(&user.CreatedAt, &user.UpdatedAt)
	s.Users = append(s.Users, *user)
	return nil
}

func (s *MemoryUserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.Users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// MemoryProductStore is an in-memory store.ProductStore.
type MemoryProductStore struct {
	mu       sync.Mutex
	Products []models.Product
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{}
}

// Seed inserts a product as-is, keeping any timestamps the test set.
func (s *MemoryProductStore) Seed(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Products = append(s.Products, product)
}

func (s *MemoryProductStore) Create(product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Products {
		if p.Material == product.Material || p.Barcode == product.Barcode {
			return gorm.ErrDuplicatedKey
		}
	}
	stampNew(&product.CreatedAt, &product.UpdatedAt)
	s.Products = append(s.Products, *product)
	return nil
}

func (s *MemoryProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryProductStore) FindByMaterialOrBarcode(material int64, barcode string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Products {
		if p.Material == material || p.Barcode == barcode {
			found := p
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryProductStore) List(category string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Product
	for _, p := range s.Products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *MemoryProductStore) SearchMaterial(material int64) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Product
	for _, p := range s.Products {
		if p.Material == material {
			out = append(out, p)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *MemoryProductStore) SearchText(query string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(query)
	var out []models.Product
	for _, p := range s.Products {
		if strings.Contains(strings.ToLower(p.Barcode), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *MemoryProductStore) UpdateCategory(id uuid.UUID, category string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Products {
		if s.Products[i].ID == id {
			s.Products[i].Category = category
			s.Products[i].UpdatedAt = time.Now()
			found := s.Products[i]
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryProductStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Products {
		if s.Products[i].ID == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *MemoryProductStore) Count() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.Products)), nil
}

func (s *MemoryProductStore) CountByCategory() ([]store.CategoryCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tally := make(map[string]int64)
	for _, p := range s.Products {
		tally[p.Category]++
	}
	out := make([]store.CategoryCount, 0, len(tally))
	for name, count := range tally {
		out = append(out, store.CategoryCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *MemoryProductStore) Recent(limit int) ([]models.Product, error) {
	all, err := s.List("")
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *MemoryProductStore) ExistsWithCategory(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Products {
		if p.Category == name {
			return true, nil
		}
	}
	return false, nil
}

// MemoryCategoryStore is an in-memory store.CategoryStore.
type MemoryCategoryStore struct {
	mu         sync.Mutex
	Categories []models.Category
}

func NewMemoryCategoryStore() *MemoryCategoryStore {
	return &MemoryCategoryStore{}
}

func (s *MemoryCategoryStore) Create(category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.Categories {
		if c.Name == category.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	s.Categories = append(s.Categories, *category)
	return nil
}

func (s *MemoryCategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.Categories {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryCategoryStore) FindByName(name string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.Categories {
		if c.Name == name {
			found := c
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryCategoryStore) List() ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.Categories))
	copy(out, s.Categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryCategoryStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func sortNewestFirst(products []models.Product) {
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}

func stampNew(createdAt, updatedAt *time.Time) {
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}
