package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/scanventory/scanventory-backend/internal/dto"
	"github.com/scanventory/scanventory-backend/internal/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.analyticsService.Overview()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute analytics overview",
		})
	}

	return c.JSON(overview)
}

func (h *AnalyticsHandler) CategoryDetail(c *fiber.Ctx) error {
	detail, err := h.analyticsService.CategoryDetail(c.Query("category"))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Category parameter is required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute category analytics",
		})
	}

	return c.JSON(detail)
}
