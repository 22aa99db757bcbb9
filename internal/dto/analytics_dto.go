package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/scanventory/scanventory-backend/internal/models"
)

type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// RecentProduct is the trimmed product view used in the overview feed.
type RecentProduct struct {
	ID          uuid.UUID `json:"id"`
	Material    int64     `json:"material"`
	Barcode     string    `json:"barcode"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

type RecentProducts struct {
	Count    int             `json:"count"`
	Products []RecentProduct `json:"products"`
}

type AnalyticsOverview struct {
	TotalProducts  int64           `json:"total_products"`
	CategoryCounts []CategoryCount `json:"category_counts"`
	RecentProducts RecentProducts  `json:"recent_products"`
}

// CategorySummary is either a stored Category or, when the name only exists on
// products, a synthetic placeholder holding just the name.
type CategorySummary struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type CategoryAnalytics struct {
	Category     CategorySummary  `json:"category"`
	ProductCount int              `json:"product_count"`
	Products     []models.Product `json:"products"`
}
