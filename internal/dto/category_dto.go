package dto

import "github.com/scanventory/scanventory-backend/internal/models"

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	Message  string           `json:"message"`
	Category *models.Category `json:"category"`
}

type CategoryListResponse struct {
	Count      int               `json:"count"`
	Categories []models.Category `json:"categories"`
}
