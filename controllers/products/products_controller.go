package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-api/configs"
	"storefront-api/models"
	"storefront-api/responses"
)

var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")

// GetAllProducts lists the catalog, optionally filtered by category, with
// page/limit pagination.
func GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category := c.Query("category")
	pageStr := c.Query("page", "1")
	limitStr := c.Query("limit", "10")

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil {
		page = 1
	}

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil {
		limit = 10
	}

	skip := (page - 1) * limit

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	totalProducts, err := productCollection.CountDocuments(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error counting products",
			Result:  nil,
		})
	}

	findOptions := options.Find()
	findOptions.SetSkip(skip)
	findOptions.SetLimit(limit)

	var products []models.Product
	cursor, err := productCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching products",
			Result:  nil,
		})
	}
	if err = cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing products",
			Result:  nil,
		})
	}
	totalPages := (totalProducts + limit - 1) / limit

	status := "success"
	if len(products) == 0 {
		status = "no more products"
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched Products",
		Result: &fiber.Map{
			"status":        status,
			"currentPage":   page,
			"totalPages":    totalPages,
			"totalProducts": totalProducts,
			"products":      products,
		},
	})
}

// SearchProducts filters the catalog by product name.
func SearchProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	name := c.Query("name")
	pageStr := c.Query("page", "1")
	limitStr := c.Query("limit", "10")

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil {
		page = 1
	}

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil {
		limit = 10
	}

	skip := (page - 1) * limit

	filter := bson.M{}
	if name != "" {
		filter["name"] = bson.M{"$regex": name, "$options": "i"}
	}

	totalProducts, err := productCollection.CountDocuments(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in counting products",
			Result:  nil,
		})
	}

	findOptions := options.Find()
	findOptions.SetSkip(skip)
	findOptions.SetLimit(limit)

	var products []models.Product

	cursor, err := productCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in fetching products",
			Result:  nil,
		})
	}

	if err = cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing products",
			Result:  nil,
		})
	}

	totalPages := (totalProducts + limit - 1) / limit

	if len(products) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.StoreResponse{
			Status:  fiber.StatusNotFound,
			Message: "No products found",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Products found",
		Result: &fiber.Map{
			"currentPage":   page,
			"totalPages":    totalPages,
			"totalProducts": totalProducts,
			"products":      products,
		},
	})
}
