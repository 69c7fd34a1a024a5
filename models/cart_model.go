package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-api/errs"
)

// CartLineItem is one product entry in a cart. A cart never holds two line
// items for the same product; quantity changes replace the old value.
type CartLineItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
	Price     float64            `bson:"price" json:"price"`
	Name      string             `bson:"name" json:"name"`
}

// Cart is the session-scoped collection of selected products. One document
// per user; created empty on first use and cleared on order completion.
type Cart struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Items  []CartLineItem     `bson:"items" json:"items"`
}

// Add inserts a line item with quantity 1, or increments the quantity when
// the product is already present. Repeated calls accumulate quantity.
func (c *Cart) Add(product Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == product.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartLineItem{
		ProductID: product.ID,
		Quantity:  1,
		Price:     product.Price,
		Name:      product.Name,
	})
}

// SetQuantity replaces the quantity of an existing line item. Quantities
// below 1 are rejected and leave the cart untouched.
func (c *Cart) SetQuantity(productID primitive.ObjectID, qty int) error {
	if qty < 1 {
		return errs.NewValidationError("quantity", fmt.Sprintf("must be at least 1, got %d", qty))
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			return nil
		}
	}
	return errs.NewValidationError("productId", "not in cart")
}

// Remove deletes the line item for the given product, if present.
func (c *Cart) Remove(productID primitive.ObjectID) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after successful order placement.
func (c *Cart) Clear() {
	c.Items = []CartLineItem{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Count is the total number of units across all line items, the number shown
// on the cart badge.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the sum of price*quantity over all line items.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
