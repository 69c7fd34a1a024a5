package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentMethod is one of the supported checkout payment options. The set is
// enumerated so unknown values are rejected before any gateway call.
type PaymentMethod string

const (
	PaymentCard    PaymentMethod = "card"
	PaymentInvoice PaymentMethod = "invoice"
	PaymentSwish   PaymentMethod = "swish"
)

// SupportedPaymentMethods lists every method checkout accepts.
var SupportedPaymentMethods = []PaymentMethod{PaymentCard, PaymentInvoice, PaymentSwish}

func (m PaymentMethod) Supported() bool {
	for _, s := range SupportedPaymentMethods {
		if m == s {
			return true
		}
	}
	return false
}

// ShippingInfo is the delivery address collected during checkout. Every field
// is required and checked before submission.
type ShippingInfo struct {
	Address    string `bson:"address" json:"address" validate:"required"`
	City       string `bson:"city" json:"city" validate:"required"`
	PostalCode string `bson:"postalCode" json:"postalCode" validate:"required"`
}

// Order is the terminal record produced by a successful checkout. It snapshots
// the cart's line items and is never mutated afterwards, except for the
// payment confirmation fields set by the gateway callback.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Items         []CartLineItem     `bson:"items" json:"items"`
	Shipping      ShippingInfo       `bson:"shipping" json:"shipping"`
	Method        PaymentMethod      `bson:"method" json:"method"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	Confirmation  string             `bson:"confirmation" json:"confirmation"`
	PaymentRef    string             `bson:"paymentRef" json:"paymentRef"`
	PaymentID     string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"` // pending, completed, failed
	Status        string             `bson:"status" json:"status"`               // pending, processing, shipped, delivered
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
