package routes

import (
	controllers "storefront-api/controllers/products"

	"github.com/gofiber/fiber/v2"
)

func ProductsRoute(app *fiber.App) {
	app.Get("/api/catalog", controllers.GetAllProducts)

	//Search products with name
	app.Get("/api/search", controllers.SearchProducts)

	//Fetch productDetails with reviews and rating summary
	app.Get("/api/details", controllers.FetchProductDetails)
}
