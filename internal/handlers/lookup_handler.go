package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/scanventory/scanventory-backend/internal/dto"
	"github.com/scanventory/scanventory-backend/internal/services"
)

// LookupHandler is a thin passthrough to the external product-metadata
// service. It validates nothing and persists nothing; mapping the upstream
// shape into a product create call is the client's job.
type LookupHandler struct {
	lookupService *services.LookupService
}

func NewLookupHandler(lookupService *services.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

func (h *LookupHandler) Product(c *fiber.Ctx) error {
	barcode := c.Params("barcode")

	result, err := h.lookupService.Lookup(barcode)
	if err != nil {
		slog.Error("product lookup failed", "barcode", barcode, "error", err.Error())
		if errors.Is(err, services.ErrUpstreamUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: "External service unavailable: no response received",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch product data",
		})
	}

	if result.OK() {
		if result.ContentType != "" {
			c.Set(fiber.HeaderContentType, result.ContentType)
		}
		return c.Status(result.StatusCode).Send(result.Body)
	}

	// Upstream errors keep their status code; the body rides along as detail.
	var details any = string(result.Body)
	if json.Valid(result.Body) {
		details = json.RawMessage(result.Body)
	}
	return c.Status(result.StatusCode).JSON(fiber.Map{
		"error":   true,
		"message": "Failed to fetch product data",
		"details": details,
	})
}
