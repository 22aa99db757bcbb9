package database

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scanventory/scanventory-backend/internal/models"
)

// DefaultCategories is the fixed seed set applied once at process start.
var DefaultCategories = []string{
	"Uncategorized",
	"In Stock",
	"Stock Out",
}

// SeedCategories creates any default category that does not exist yet.
func SeedCategories(db *gorm.DB) error {
	for _, name := range DefaultCategories {
		var existing models.Category
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			slog.Info("category already exists", "name", name)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		category := models.Category{ID: uuid.New(), Name: name}
		if err := db.Create(&category).Error; err != nil {
			// A concurrent replica may have seeded the same name first.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return err
		}
		slog.Info("category created", "name", name)
	}
	return nil
}
