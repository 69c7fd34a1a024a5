// Package payment is the boundary to the hosted payment processor. Checkout
// talks to the Provider interface; the Razorpay client is one implementation.
package payment

import (
	"context"

	"storefront-api/models"
)

// Provider submits a charge to the external payment processor and returns the
// processor's reference id for the attempt.
type Provider interface {
	Charge(ctx context.Context, amount float64, method models.PaymentMethod, orderRef string) (string, error)
}
