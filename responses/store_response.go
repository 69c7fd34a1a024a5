package responses

import "github.com/gofiber/fiber/v2"

// StoreResponse is the envelope every API handler returns.
type StoreResponse struct {
	Status  int        `json:"status"`
	Message string     `json:"message"`
	Result  *fiber.Map `json:"result"`
}
