package cartController

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-api/configs"
	"storefront-api/responses"
	"storefront-api/services"
	"storefront-api/store"
)

var cartStore = store.NewCarts(configs.GetCollection(configs.DB, "carts"))
var productStore = store.NewProducts(configs.GetCollection(configs.DB, "products"))

func currentUserID(c *fiber.Ctx) (primitive.ObjectID, bool) {
	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// AddToCart inserts the product with quantity 1 or increments an existing
// line item. The new badge count is returned so the UI updates immediately.
func AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request AddToCartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
			Result:  nil,
		})
	}

	productID, err := primitive.ObjectIDFromHex(request.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
			Result:  nil,
		})
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.StoreResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	product, err := productStore.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(responses.StoreResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product details",
			Result:  nil,
		})
	}

	cart, err := cartStore.Get(ctx, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
			Result:  nil,
		})
	}

	cart.Add(product)

	if err := cartStore.Save(ctx, cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully added to cart",
		Result: &fiber.Map{
			"status":    "success",
			"cartCount": cart.Count(),
		},
	})
}

type SetQuantityRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required"`
}

// SetQuantity replaces a line item's quantity. Quantities below 1 are
// rejected and the cart is left as it was.
func SetQuantity(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request SetQuantityRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
			Result:  nil,
		})
	}

	productID, err := primitive.ObjectIDFromHex(request.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
			Result:  nil,
		})
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.StoreResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	cart, err := cartStore.Get(ctx, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
			Result:  nil,
		})
	}

	if err := cart.SetQuantity(productID, request.Quantity); err != nil {
		return responses.FromError(c, err)
	}

	if err := cartStore.Save(ctx, cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Quantity updated",
		Result: &fiber.Map{
			"status":    "success",
			"cartCount": cart.Count(),
		},
	})
}

type RemoveFromCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

func RemoveFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request RemoveFromCartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
			Result:  nil,
		})
	}

	productID, err := primitive.ObjectIDFromHex(request.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
			Result:  nil,
		})
	}

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.StoreResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	cart, err := cartStore.Get(ctx, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
			Result:  nil,
		})
	}

	cart.Remove(productID)

	if err := cartStore.Save(ctx, cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully removed from cart",
		Result: &fiber.Map{
			"status":    "success",
			"cartCount": cart.Count(),
		},
	})
}

// GetCart returns the line items plus the fields the cart page needs to
// render either the item list or the empty-cart affordance.
func GetCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.StoreResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	cart, err := cartStore.Get(ctx, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched cart items",
		Result: &fiber.Map{
			"items":     cart.Items,
			"cartCount": cart.Count(),
			"subtotal":  cart.Subtotal(),
			"isEmpty":   cart.IsEmpty(),
		},
	})
}
