package routes

import (
	reviewController "storefront-api/controllers/reviews"
	"storefront-api/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ReviewRoutes(app *fiber.App) {
	app.Post("/api/reviews", middlewares.AuthMiddleware, reviewController.SubmitReview)
	app.Get("/api/reviews", reviewController.GetProductReviews)
}
