package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/scanventory/scanventory-backend/internal/dto"
	"github.com/scanventory/scanventory-backend/internal/store"
)

// RecentProductLimit caps the recent-activity feed in the overview.
const RecentProductLimit = 10

type AnalyticsService struct {
	products   store.ProductStore
	categories store.CategoryStore
}

func NewAnalyticsService(products store.ProductStore, categories store.CategoryStore) *AnalyticsService {
	return &AnalyticsService{products: products, categories: categories}
}

// Overview recomputes the aggregate picture on every call: per-category counts
// left-joined against the category list (zero-count categories included), plus
// any names that only exist on products, the total, and the latest products.
func (s *AnalyticsService) Overview() (*dto.AnalyticsOverview, error) {
	counts, err := s.products.CountByCategory()
	if err != nil {
		return nil, fmt.Errorf("failed to count products per category: %w", err)
	}

	categories, err := s.categories.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	total, err := s.products.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	recent, err := s.products.Recent(RecentProductLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent products: %w", err)
	}

	byName := make(map[string]int64, len(counts))
	for _, c := range counts {
		byName[c.Name] = c.Count
	}

	formatted := make([]dto.CategoryCount, 0, len(categories)+len(counts))
	seen := make(map[string]bool, len(categories))
	for _, cat := range categories {
		formatted = append(formatted, dto.CategoryCount{
			Name:  cat.Name,
			Count: byName[cat.Name],
		})
		seen[cat.Name] = true
	}

	// Product rows may carry names no Category row has.
	for _, c := range counts {
		if !seen[c.Name] {
			formatted = append(formatted, dto.CategoryCount{Name: c.Name, Count: c.Count})
		}
	}

	recentViews := make([]dto.RecentProduct, 0, len(recent))
	for _, p := range recent {
		recentViews = append(recentViews, dto.RecentProduct{
			ID:          p.ID,
			Material:    p.Material,
			Barcode:     p.Barcode,
			Description: p.Description,
			Category:    p.Category,
			CreatedAt:   p.CreatedAt,
		})
	}

	return &dto.AnalyticsOverview{
		TotalProducts:  total,
		CategoryCounts: formatted,
		RecentProducts: dto.RecentProducts{
			Count:    len(recentViews),
			Products: recentViews,
		},
	}, nil
}

// CategoryDetail returns everything filed under one category name. The name
// does not have to exist as a Category row; when it does not, the response
// carries a placeholder holding just the name.
func (s *AnalyticsService) CategoryDetail(name string) (*dto.CategoryAnalytics, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	products, err := s.products.List(name)
	if err != nil {
		return nil, fmt.Errorf("failed to list products in category: %w", err)
	}

	summary := dto.CategorySummary{Name: name}
	category, err := s.categories.FindByName(name)
	if err == nil {
		summary.ID = &category.ID
		summary.Name = category.Name
		summary.CreatedAt = &category.CreatedAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}

	return &dto.CategoryAnalytics{
		Category:     summary,
		ProductCount: len(products),
		Products:     products,
	}, nil
}
