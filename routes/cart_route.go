package routes

import (
	cartController "storefront-api/controllers/cart"
	"storefront-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App) {
	app.Post("/api/cart/add", middlewares.AuthMiddleware, cartController.AddToCart)

	app.Post("/api/cart/quantity", middlewares.AuthMiddleware, cartController.SetQuantity)

	app.Post("/api/cart/remove", middlewares.AuthMiddleware, cartController.RemoveFromCart)

	app.Get("/api/cart", middlewares.AuthMiddleware, cartController.GetCart)
}
