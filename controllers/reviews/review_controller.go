package reviewController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-api/configs"
	"storefront-api/responses"
	"storefront-api/services"
	"storefront-api/store"
)

var reviewService = services.NewReviewService(
	store.NewReviews(configs.GetCollection(configs.DB, "reviews")),
	store.NewProducts(configs.GetCollection(configs.DB, "products")),
)

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

type SubmitReviewRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Title     string `json:"title"`
	Comment   string `json:"comment" validate:"required"`
}

// SubmitReview appends a review and returns the recomputed rating aggregate
// so the detail page can update without a refetch.
func SubmitReview(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request SubmitReviewRequest
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

	// The auth middleware guards the route, but the service enforces the
	// requirement as well; a missing id surfaces as AuthRequiredError.
	userID, _ := currentUserID(c)

	review, summary, err := reviewService.Submit(ctx, userID, productID, request.Rating, request.Title, request.Comment)
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Review submitted successfully",
		Result: &fiber.Map{
			"review": review,
			"rating": summary,
		},
	})
}

// GetProductReviews lists the reviews for one product.
func GetProductReviews(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Query("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
			Result:  nil,
		})
	}

	reviews, err := reviewService.ListByProduct(ctx, productID)
	if err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Reviews fetched successfully",
		Result: &fiber.Map{
			"reviews": reviews,
		},
	})
}
