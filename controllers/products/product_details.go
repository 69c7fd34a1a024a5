package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-api/configs"
	"storefront-api/models"
	"storefront-api/responses"
	"storefront-api/store"
)

var reviewStore = store.NewReviews(configs.GetCollection(configs.DB, "reviews"))

// FetchProductDetails returns one product together with its reviews and the
// denormalized rating summary, everything the detail page renders.
func FetchProductDetails(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productId := c.Query("productId")

	objectId, err := primitive.ObjectIDFromHex(productId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
			Result:  nil,
		})
	}

	var product models.Product
	err = productCollection.FindOne(ctx, bson.M{"_id": objectId}).Decode(&product)

	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.StoreResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product details",
			Result:  nil,
		})
	}

	reviews, err := reviewStore.ListByProduct(ctx, objectId)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching reviews",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Product fetched successfully",
		Result: &fiber.Map{
			"status":  "success",
			"product": product,
			"reviews": reviews,
			"rating":  product.Rating,
		},
	})
}
