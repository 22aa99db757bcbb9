package dto

import "github.com/scanventory/scanventory-backend/internal/models"

type CreateProductRequest struct {
	Material    int64  `json:"material"`
	Barcode     string `json:"barcode"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type UpdateCategoryRequest struct {
	Category string `json:"category"`
}

type ProductResponse struct {
	Message string          `json:"message"`
	Product *models.Product `json:"product"`
}

type ProductListResponse struct {
	Count    int              `json:"count"`
	Products []models.Product `json:"products"`
}

type SearchResponse struct {
	Count    int              `json:"count"`
	Query    string           `json:"query"`
	Products []models.Product `json:"products"`
}
