package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/scanventory/scanventory-backend/internal/config"
	"github.com/scanventory/scanventory-backend/internal/handlers"
	"github.com/scanventory/scanventory-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	productHandler *handlers.ProductHandler,
	categoryHandler *handlers.CategoryHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	lookupHandler *handlers.LookupHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Liveness probe, outside /api and unauthenticated.
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Everything else requires a bearer token.
	jwt := middleware.JWTProtected(cfg)

	// Products. /products/search must register before /products/:id.
	api.Get("/products", jwt, productHandler.List)
	api.Post("/products", jwt, productHandler.Create)
	api.Get("/products/search", jwt, productHandler.Search)
	api.Get("/products/:id", jwt, productHandler.GetByID)
	api.Patch("/products/:id/category", jwt, productHandler.UpdateCategory)
	api.Delete("/products/:id", jwt, productHandler.Delete)

	// Categories
	api.Get("/categories", jwt, categoryHandler.List)
	api.Post("/categories", jwt, categoryHandler.Create)
	api.Get("/categories/:id", jwt, categoryHandler.GetByID)
	api.Delete("/categories/:id", jwt, categoryHandler.Delete)

	// Analytics
	api.Get("/analytics", jwt, analyticsHandler.Overview)
	api.Get("/analytics/categories", jwt, analyticsHandler.CategoryDetail)

	// External lookup passthrough
	api.Get("/proxy/product/:barcode", jwt, lookupHandler.Product)
}
