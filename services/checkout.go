package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-api/errs"
	"storefront-api/models"
	"storefront-api/payment"
)

// CheckoutState is the workflow position of a checkout session.
type CheckoutState string

const (
	StateFilling    CheckoutState = "filling"
	StateSubmitting CheckoutState = "submitting"
	StateConfirmed  CheckoutState = "confirmed"
	StateFailed     CheckoutState = "failed"
)

// CheckoutSession carries the collected form values through the workflow.
// Field values survive a failed submission so the user can resubmit without
// retyping; nothing retries automatically.
type CheckoutSession struct {
	UserID       primitive.ObjectID
	Shipping     models.ShippingInfo
	Method       models.PaymentMethod
	State        CheckoutState
	FailReason   string
	OrderID      primitive.ObjectID
	Confirmation string
}

func NewCheckoutSession(userID primitive.ObjectID) *CheckoutSession {
	return &CheckoutSession{UserID: userID, State: StateFilling}
}

// Retry moves a failed session back to filling. Shipping and method values
// are kept.
func (s *CheckoutSession) Retry() {
	if s.State == StateFailed {
		s.State = StateFilling
		s.FailReason = ""
	}
}

func (s *CheckoutSession) fail(reason string) {
	s.State = StateFailed
	s.FailReason = reason
}

type CheckoutService struct {
	carts    CartStore
	orders   OrderStore
	gateway  payment.Provider
	validate *validator.Validate
}

func NewCheckoutService(carts CartStore, orders OrderStore, gateway payment.Provider) *CheckoutService {
	v := validator.New()
	// Report field errors under their json names, which is what the client
	// submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CheckoutService{carts: carts, orders: orders, gateway: gateway, validate: v}
}

// Submit runs one checkout attempt: validate shipping and payment method,
// charge the gateway, record the order, clear the cart. Validation failures
// keep the session in filling; a gateway rejection moves it to failed with
// the form values preserved for retry. The cart is only mutated on success.
func (c *CheckoutService) Submit(ctx context.Context, sess *CheckoutSession, shipping models.ShippingInfo, method models.PaymentMethod) error {
	shipping.Address = strings.TrimSpace(shipping.Address)
	shipping.City = strings.TrimSpace(shipping.City)
	shipping.PostalCode = strings.TrimSpace(shipping.PostalCode)
	sess.Shipping = shipping
	sess.Method = method

	cart, err := c.carts.Get(ctx, sess.UserID)
	if err != nil {
		return &errs.DataSourceError{Op: "load cart", Err: err}
	}
	if cart.IsEmpty() {
		return errs.NewValidationError("cart", "is empty")
	}

	if err := c.validateShipping(shipping); err != nil {
		return err
	}

	if !method.Supported() {
		return &errs.PaymentError{Method: string(method), Reason: "unsupported payment method"}
	}

	sess.State = StateSubmitting

	orderID := primitive.NewObjectID()
	paymentRef, err := c.gateway.Charge(ctx, cart.Subtotal(), method, orderID.Hex())
	if err != nil {
		sess.fail(err.Error())
		var pErr *errs.PaymentError
		if errors.As(err, &pErr) {
			return pErr
		}
		return &errs.PaymentError{Method: string(method), Reason: err.Error()}
	}

	now := time.Now()
	order := models.Order{
		ID:            orderID,
		UserID:        sess.UserID,
		Items:         cart.Items,
		Shipping:      shipping,
		Method:        method,
		TotalAmount:   cart.Subtotal(),
		Confirmation:  confirmationRef(orderID),
		PaymentRef:    paymentRef,
		PaymentStatus: "pending",
		Status:        "pending",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := c.orders.Insert(ctx, order); err != nil {
		sess.fail(err.Error())
		return &errs.DataSourceError{Op: "insert order", Err: err}
	}

	if err := c.carts.Clear(ctx, sess.UserID); err != nil {
		return &errs.DataSourceError{Op: "clear cart", Err: err}
	}

	sess.State = StateConfirmed
	sess.OrderID = orderID
	sess.Confirmation = order.Confirmation
	return nil
}

func (c *CheckoutService) validateShipping(info models.ShippingInfo) error {
	err := c.validate.Struct(info)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	vErr := &errs.ValidationError{}
	for _, fe := range fieldErrs {
		vErr.Add(fe.Field(), "is required")
	}
	return vErr
}

// confirmationRef derives the human-facing order reference from the order id.
func confirmationRef(id primitive.ObjectID) string {
	return "ORD-" + strings.ToUpper(id.Hex()[16:])
}
