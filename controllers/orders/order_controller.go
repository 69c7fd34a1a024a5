package orderController

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-api/configs"
	"storefront-api/models"
	"storefront-api/payment"
	"storefront-api/responses"
	"storefront-api/services"
	"storefront-api/store"
)

var orderCollection *mongo.Collection = configs.GetCollection(configs.DB, "orders")

var checkoutService = services.NewCheckoutService(
	store.NewCarts(configs.GetCollection(configs.DB, "carts")),
	store.NewOrders(orderCollection),
	payment.NewRazorpayProvider(configs.EnvRazorpayKeyId(), configs.EnvRazorpayKeySecret(), "SEK"),
)
var orderStore = store.NewOrders(orderCollection)

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

type SubmitCheckoutRequest struct {
	Shipping models.ShippingInfo `json:"shipping"`
	Method   string              `json:"method" validate:"required"`
}

// SubmitCheckout runs one checkout attempt for the caller's cart. Validation
// and payment failures come back through the error taxonomy; on success the
// confirmation reference is returned and the cart is already cleared.
func SubmitCheckout(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.StoreResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	var request SubmitCheckoutRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Result:  nil,
		})
	}

	sess := services.NewCheckoutSession(userID)
	if err := checkoutService.Submit(ctx, sess, request.Shipping, models.PaymentMethod(request.Method)); err != nil {
		return responses.FromError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Order created successfully",
		Result: &fiber.Map{
			"orderId":      sess.OrderID.Hex(),
			"confirmation": sess.Confirmation,
			"state":        string(sess.State),
		},
	})
}

type ConfirmPaymentRequest struct {
	OrderID    string `json:"orderId"`
	PaymentID  string `json:"paymentId"`
	Signature  string `json:"signature"`
	GatewayRef string `json:"gatewayRef"`
}

// ConfirmPayment verifies the gateway's signature for a completed payment and
// marks the order paid.
func ConfirmPayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.StoreResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	var request ConfirmPaymentRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Result:  nil,
		})
	}

	if !payment.VerifySignature(request.GatewayRef, request.PaymentID, request.Signature, configs.EnvRazorpayKeySecret()) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid payment signature",
			Result:  nil,
		})
	}

	orderObjectID, err := primitive.ObjectIDFromHex(request.OrderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
			Result:  nil,
		})
	}

	if err := orderStore.MarkPaid(ctx, orderObjectID, userID, request.PaymentID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(responses.StoreResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found or doesn't belong to user",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update order",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Payment verified successfully",
		Result: &fiber.Map{
			"orderId":   request.OrderID,
			"paymentId": request.PaymentID,
		},
	})
}

func GetOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.StoreResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	pageStr := c.Query("page", "1")
	limitStr := c.Query("limit", "10")
	status := c.Query("status", "")

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil {
		page = 1
	}

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil {
		limit = 10
	}

	skip := (page - 1) * limit

	filter := bson.M{"userId": userID}
	if status != "" {
		filter["status"] = status
	}

	totalOrders, err := orderCollection.CountDocuments(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to count orders",
			Result:  nil,
		})
	}

	cursor, err := orderCollection.Find(ctx, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &limit,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
			Result:  nil,
		})
	}
	defer cursor.Close(ctx)

	var orders []fiber.Map
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to decode order",
				Result:  nil,
			})
		}

		var simplifiedItems []fiber.Map
		for _, item := range order.Items {
			simplifiedItems = append(simplifiedItems, fiber.Map{
				"name":     item.Name,
				"price":    item.Price,
				"quantity": item.Quantity,
			})
		}

		orders = append(orders, fiber.Map{
			"id":           order.ID.Hex(),
			"confirmation": order.Confirmation,
			"items":        simplifiedItems,
			"status":       order.Status,
			"total":        order.TotalAmount,
			"createdAt":    order.CreatedAt,
		})
	}

	if err := cursor.Err(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Cursor error",
			Result:  nil,
		})
	}

	totalPages := (totalOrders + limit - 1) / limit

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched successfully",
		Result: &fiber.Map{
			"orders":      orders,
			"currentPage": page,
			"totalPages":  totalPages,
			"totalOrders": totalOrders,
		},
	})
}

func GetOrderById(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.StoreResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	orderId := c.Query("id")
	if orderId == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Order ID is required",
			Result:  nil,
		})
	}

	orderObjectID, err := primitive.ObjectIDFromHex(orderId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
			Result:  nil,
		})
	}

	order, err := orderStore.Get(ctx, orderObjectID, userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(responses.StoreResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch order",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Order fetched successfully",
		Result: &fiber.Map{
			"order": order,
		},
	})
}
