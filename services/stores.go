// Package services holds the storefront workflows (checkout, reviews,
// seeding) behind narrow store interfaces so they can be exercised without a
// running database. The Mongo implementations live in the store package.
package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-api/models"
)

// ErrNotFound is returned by stores when the requested document does not
// exist. Services translate it into the appropriate taxonomy error.
var ErrNotFound = errors.New("not found")

// CartStore persists one cart document per user. Get returns an empty cart
// (not ErrNotFound) when the user has no cart yet.
type CartStore interface {
	Get(ctx context.Context, userID primitive.ObjectID) (models.Cart, error)
	Save(ctx context.Context, cart models.Cart) error
	Clear(ctx context.Context, userID primitive.ObjectID) error
}

type OrderStore interface {
	Insert(ctx context.Context, order models.Order) error
	Get(ctx context.Context, id, userID primitive.ObjectID) (models.Order, error)
	MarkPaid(ctx context.Context, id, userID primitive.ObjectID, paymentID string) error
}

type ProductStore interface {
	Get(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	UpdateRating(ctx context.Context, id primitive.ObjectID, summary models.RatingSummary) error
}

type ReviewStore interface {
	Insert(ctx context.Context, review models.Review) error
	ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error)
}

// ProductBatchWriter is the slice of the product store the seed operation
// needs.
type ProductBatchWriter interface {
	InsertMany(ctx context.Context, products []models.Product) (int, error)
}
