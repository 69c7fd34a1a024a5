package routes

import (
	orderController "storefront-api/controllers/orders"
	"storefront-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App) {
	app.Post("/api/checkout", middlewares.AuthMiddleware, orderController.SubmitCheckout)
	app.Post("/api/checkout/confirm-payment", middlewares.AuthMiddleware, orderController.ConfirmPayment)
	app.Get("/api/orders", middlewares.AuthMiddleware, orderController.GetOrders)
	app.Get("/api/order", middlewares.AuthMiddleware, orderController.GetOrderById)
}
