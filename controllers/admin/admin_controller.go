package adminController

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-api/configs"
	"storefront-api/models"
	"storefront-api/responses"
	"storefront-api/services"
	"storefront-api/store"
)

var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")
var adminUserCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")
var productStore = store.NewProducts(productCollection)

// requireAdmin loads the caller and checks the admin flag. When the caller is
// not an admin it writes the response and returns ok=false.
func requireAdmin(ctx context.Context, c *fiber.Ctx) (bool, error) {
	userId, okLocal := c.Locals("userId").(string)
	if !okLocal || userId == "" {
		return false, c.Status(fiber.StatusUnauthorized).JSON(responses.StoreResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return false, c.Status(fiber.StatusUnauthorized).JSON(responses.StoreResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid User ID format",
			Result:  nil,
		})
	}

	var user models.User
	if err := adminUserCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return false, c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user data",
			Result:  nil,
		})
	}

	if user.Type != "admin" {
		return false, c.Status(fiber.StatusForbidden).JSON(responses.StoreResponse{
			Status:  fiber.StatusForbidden,
			Message: "Admin access required",
			Result:  nil,
		})
	}

	return true, nil
}

// AddProduct inserts a single product into the catalog.
func AddProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if ok, err := requireAdmin(ctx, c); !ok {
		return err
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing product data",
			Result:  nil,
		})
	}

	result, err := productCollection.InsertOne(ctx, product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting product",
			Result:  nil,
		})
	}

	insertedId := result.InsertedID.(primitive.ObjectID)
	product.ID = insertedId

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Product added successfully",
		Result: &fiber.Map{
			"product": product,
		},
	})
}

// ListProducts is the admin product listing, paginated.
func ListProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if ok, err := requireAdmin(ctx, c); !ok {
		return err
	}

	pageStr := c.Query("page", "1")
	limitStr := c.Query("limit", "20")

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil {
		page = 1
	}

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil {
		limit = 20
	}

	skip := (page - 1) * limit

	totalProducts, err := productCollection.CountDocuments(ctx, bson.M{})
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
	cursor, err := productCollection.Find(ctx, bson.M{}, findOptions)
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

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched Products",
		Result: &fiber.Map{
			"currentPage":   page,
			"totalPages":    totalPages,
			"totalProducts": totalProducts,
			"products":      products,
		},
	})
}

// SeedProducts runs the seed batch against the product collection. Re-running
// duplicates records; it is an operational tool, not a production path.
func SeedProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if ok, err := requireAdmin(ctx, c); !ok {
		return err
	}

	summary, err := services.SeedDatabase(ctx, productStore)
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Seed completed",
		Result: &fiber.Map{
			"summary": summary,
		},
	})
}
