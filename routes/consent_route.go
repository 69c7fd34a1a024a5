package routes

import (
	consentController "storefront-api/controllers/consent"

	"github.com/gofiber/fiber/v2"
)

func ConsentRoutes(app *fiber.App) {
	app.Get("/api/consent", consentController.GetConsent)
	app.Post("/api/consent/accept", consentController.AcceptConsent)
	app.Post("/api/consent/decline", consentController.DeclineConsent)
}
