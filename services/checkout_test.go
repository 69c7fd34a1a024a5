package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-api/errs"
	"storefront-api/models"
)

var validShipping = models.ShippingInfo{
	Address:    "Storgatan 1",
	City:       "Gothenburg",
	PostalCode: "41103",
}

func cartWith(userID primitive.ObjectID, items ...models.CartLineItem) models.Cart {
	return models.Cart{UserID: userID, Items: items}
}

func lineItem(price float64, qty int) models.CartLineItem {
	return models.CartLineItem{
		ProductID: primitive.NewObjectID(),
		Quantity:  qty,
		Price:     price,
		Name:      "Sneaker",
	}
}

func checkoutFixture(t *testing.T) (*CheckoutService, *fakeCartStore, *fakeOrderStore, *fakeGateway, primitive.ObjectID) {
	t.Helper()
	carts := newFakeCartStore()
	orders := &fakeOrderStore{}
	gateway := &fakeGateway{}
	userID := primitive.NewObjectID()
	carts.carts[userID] = cartWith(userID, lineItem(100.0, 2), lineItem(50.0, 1))
	return NewCheckoutService(carts, orders, gateway), carts, orders, gateway, userID
}

func TestCheckout_SubmitSuccess(t *testing.T) {
	svc, carts, orders, gateway, userID := checkoutFixture(t)
	sess := NewCheckoutSession(userID)

	err := svc.Submit(context.Background(), sess, validShipping, models.PaymentSwish)
	require.NoError(t, err)

	assert.Equal(t, StateConfirmed, sess.State)
	assert.True(t, strings.HasPrefix(sess.Confirmation, "ORD-"))
	assert.False(t, sess.OrderID.IsZero())

	// Cart is cleared on success.
	cart, _ := carts.Get(context.Background(), userID)
	assert.True(t, cart.IsEmpty())

	require.Len(t, orders.orders, 1)
	order := orders.orders[0]
	assert.Equal(t, userID, order.UserID)
	assert.InDelta(t, 250.0, order.TotalAmount, 1e-9)
	assert.Equal(t, models.PaymentSwish, order.Method)
	assert.Equal(t, validShipping, order.Shipping)
	assert.Len(t, order.Items, 2)
	assert.NotEmpty(t, order.PaymentRef)
	assert.Equal(t, 1, gateway.calls)
}

func TestCheckout_EmptyCartNeverSubmits(t *testing.T) {
	carts := newFakeCartStore()
	orders := &fakeOrderStore{}
	gateway := &fakeGateway{}
	svc := NewCheckoutService(carts, orders, gateway)
	sess := NewCheckoutSession(primitive.NewObjectID())

	err := svc.Submit(context.Background(), sess, validShipping, models.PaymentCard)

	var vErr *errs.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "cart")
	assert.Equal(t, StateFilling, sess.State)
	assert.Zero(t, gateway.calls)
	assert.Empty(t, orders.orders)
}

func TestCheckout_BlankShippingFields(t *testing.T) {
	tests := []struct {
		name     string
		shipping models.ShippingInfo
		fields   []string
	}{
		{"blank address", models.ShippingInfo{City: "Gothenburg", PostalCode: "41103"}, []string{"address"}},
		{"blank city", models.ShippingInfo{Address: "Storgatan 1", PostalCode: "41103"}, []string{"city"}},
		{"blank postal code", models.ShippingInfo{Address: "Storgatan 1", City: "Gothenburg"}, []string{"postalCode"}},
		{"whitespace only", models.ShippingInfo{Address: "   ", City: "\t", PostalCode: " "}, []string{"address", "city", "postalCode"}},
		{"all blank", models.ShippingInfo{}, []string{"address", "city", "postalCode"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, carts, orders, gateway, userID := checkoutFixture(t)
			sess := NewCheckoutSession(userID)
			before, _ := carts.Get(context.Background(), userID)

			err := svc.Submit(context.Background(), sess, tc.shipping, models.PaymentCard)

			var vErr *errs.ValidationError
			require.ErrorAs(t, err, &vErr)
			for _, f := range tc.fields {
				assert.Contains(t, vErr.Fields, f)
			}
			assert.Len(t, vErr.Fields, len(tc.fields))

			// Cart unmodified, no gateway call, still filling.
			after, _ := carts.Get(context.Background(), userID)
			assert.Equal(t, before.Items, after.Items)
			assert.Zero(t, gateway.calls)
			assert.Empty(t, orders.orders)
			assert.Equal(t, StateFilling, sess.State)
		})
	}
}

func TestCheckout_UnknownMethodRejectedBeforeGateway(t *testing.T) {
	svc, _, orders, gateway, userID := checkoutFixture(t)
	sess := NewCheckoutSession(userID)

	err := svc.Submit(context.Background(), sess, validShipping, models.PaymentMethod("barter"))

	var pErr *errs.PaymentError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "barter", pErr.Method)
	assert.Zero(t, gateway.calls, "gateway must not be called for an unsupported method")
	assert.Empty(t, orders.orders)
}

func TestCheckout_GatewayRejectionAllowsRetry(t *testing.T) {
	svc, carts, orders, gateway, userID := checkoutFixture(t)
	gateway.err = &errs.PaymentError{Method: "card", Reason: "card declined"}
	sess := NewCheckoutSession(userID)

	err := svc.Submit(context.Background(), sess, validShipping, models.PaymentCard)

	var pErr *errs.PaymentError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, StateFailed, sess.State)
	assert.NotEmpty(t, sess.FailReason)

	// Cart untouched, no order recorded.
	cart, _ := carts.Get(context.Background(), userID)
	assert.False(t, cart.IsEmpty())
	assert.Empty(t, orders.orders)

	// Retry returns to filling with the form values preserved.
	sess.Retry()
	assert.Equal(t, StateFilling, sess.State)
	assert.Empty(t, sess.FailReason)
	assert.Equal(t, validShipping, sess.Shipping)
	assert.Equal(t, models.PaymentCard, sess.Method)

	// Resubmission succeeds once the gateway accepts.
	gateway.err = nil
	require.NoError(t, svc.Submit(context.Background(), sess, sess.Shipping, sess.Method))
	assert.Equal(t, StateConfirmed, sess.State)
}

func TestCheckout_OrderInsertFailure(t *testing.T) {
	svc, carts, orders, _, userID := checkoutFixture(t)
	orders.insertErr = assert.AnError
	sess := NewCheckoutSession(userID)

	err := svc.Submit(context.Background(), sess, validShipping, models.PaymentCard)

	var dsErr *errs.DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, StateFailed, sess.State)

	cart, _ := carts.Get(context.Background(), userID)
	assert.False(t, cart.IsEmpty(), "cart must survive a failed submission")
}
