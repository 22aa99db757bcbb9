package store

import (
	"gorm.io/gorm"

	"github.com/scanventory/scanventory-backend/internal/models"
)

type userStore struct {
	db *gorm.DB
}

// NewUserStore returns a PostgreSQL-backed UserStore.
func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{db: db}
}

func (s *userStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *userStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
