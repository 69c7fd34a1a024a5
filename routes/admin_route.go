package routes

import (
	adminController "storefront-api/controllers/admin"
	"storefront-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	app.Get("/api/admin/products", middlewares.AuthMiddleware, adminController.ListProducts)
	app.Post("/api/admin/add-product", middlewares.AuthMiddleware, adminController.AddProduct)
	app.Post("/api/admin/seed", middlewares.AuthMiddleware, adminController.SeedProducts)
}
