package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the full API surface onto app. Nothing here issues or
// checks tokens; clients re-supply identifying ids on every request.
func RegisterRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	customerHandler *CustomerHandler,
	galleryHandler *GalleryHandler,
	userHandler *UserHandler,
) {
	api := app.Group("/api")

	// Authentication
	api.Post("/admin/login", authHandler.AdminLogin)
	api.Post("/customer/login", authHandler.CustomerLogin)

	// Admin account management
	admin := api.Group("/admin")
	admin.Get("/customers", customerHandler.ListCustomers)
	admin.Post("/customers", customerHandler.CreateCustomer)
	admin.Put("/customers/:id", customerHandler.UpdateCustomer)
	admin.Delete("/customers/:id", customerHandler.DeactivateCustomer)

	// Customer dashboard
	customer := api.Group("/customer")
	customer.Get("/:id/settings", customerHandler.GetSettings)
	customer.Put("/:id/settings", customerHandler.UpdateSettings)
	customer.Post("/:id/stats", customerHandler.UpdateStats)
	customer.Get("/:id/profile", customerHandler.GetProfile)
	customer.Get("/:customerId/galleries", galleryHandler.GetCustomerGalleries)
	customer.Post("/:customerId/galleries", galleryHandler.CreateGallery)

	// Public gallery page
	api.Get("/gallery/:slug", galleryHandler.GetGalleryBySlug)

	// Gallery management
	api.Put("/galleries/:id", galleryHandler.UpdateGallery)
	api.Delete("/galleries/:id", galleryHandler.DeleteGallery)

	// Legacy users table
	api.Post("/users", userHandler.CreateUser)
}
