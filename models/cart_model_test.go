package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-api/errs"
)

func sampleProduct(name string, price float64) Product {
	return Product{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Price: price,
	}
}

func TestCart_AddTwiceAccumulatesQuantity(t *testing.T) {
	cart := Cart{UserID: primitive.NewObjectID()}
	sneaker := sampleProduct("Sneaker", 79.90)

	cart.Add(sneaker)
	cart.Add(sneaker)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, sneaker.ID, cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 2, cart.Count())
}

func TestCart_AddDistinctProducts(t *testing.T) {
	cart := Cart{}
	cart.Add(sampleProduct("Sneaker", 79.90))
	cart.Add(sampleProduct("Boot", 129.00))

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestCart_SetQuantityReplaces(t *testing.T) {
	cart := Cart{}
	sneaker := sampleProduct("Sneaker", 79.90)
	cart.Add(sneaker)

	err := cart.SetQuantity(sneaker.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCart_SetQuantityBelowOneFails(t *testing.T) {
	cart := Cart{}
	sneaker := sampleProduct("Sneaker", 79.90)
	cart.Add(sneaker)

	for _, qty := range []int{0, -1, -100} {
		err := cart.SetQuantity(sneaker.ID, qty)

		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "quantity")
		// Cart must be unchanged after a rejected update.
		assert.Equal(t, 1, cart.Items[0].Quantity)
	}
}

func TestCart_SetQuantityUnknownProduct(t *testing.T) {
	cart := Cart{}
	err := cart.SetQuantity(primitive.NewObjectID(), 2)

	var vErr *errs.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "productId")
}

func TestCart_Remove(t *testing.T) {
	cart := Cart{}
	sneaker := sampleProduct("Sneaker", 79.90)
	boot := sampleProduct("Boot", 129.00)
	cart.Add(sneaker)
	cart.Add(boot)

	cart.Remove(sneaker.ID)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, boot.ID, cart.Items[0].ProductID)
}

func TestCart_ClearAndIsEmpty(t *testing.T) {
	cart := Cart{}
	assert.True(t, cart.IsEmpty())

	cart.Add(sampleProduct("Sneaker", 79.90))
	assert.False(t, cart.IsEmpty())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.Count())
}

func TestCart_Subtotal(t *testing.T) {
	cart := Cart{}
	sneaker := sampleProduct("Sneaker", 80.00)
	boot := sampleProduct("Boot", 120.50)
	cart.Add(sneaker)
	cart.Add(sneaker)
	cart.Add(boot)

	assert.InDelta(t, 280.50, cart.Subtotal(), 1e-9)
}
