package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"storefront-api/configs"
	"storefront-api/routes"
)

func main() {
	app := fiber.New()

	configs.ConnectDB()

	routes.ProductsRoute(app)
	routes.CartRoutes(app)
	routes.OrderRoutes(app)
	routes.ReviewRoutes(app)
	routes.ConsentRoutes(app)
	routes.UserRoute(app)
	routes.AdminRoutes(app)

	log.Fatal(app.Listen(configs.EnvListenAddr()))
}
