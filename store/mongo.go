// Package store implements the services store interfaces on MongoDB.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-api/models"
	"storefront-api/services"
)

// Carts keeps one cart document per user in the carts collection.
type Carts struct {
	coll *mongo.Collection
}

func NewCarts(coll *mongo.Collection) *Carts {
	return &Carts{coll: coll}
}

// Get returns the user's cart, or an empty cart when none exists yet.
func (s *Carts) Get(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	var cart models.Cart
	err := s.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cart{UserID: userID, Items: []models.CartLineItem{}}, nil
	}
	if err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *Carts) Save(ctx context.Context, cart models.Cart) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": cart.UserID},
		bson.M{"$set": bson.M{"items": cart.Items}},
		opts,
	)
	return err
}

func (s *Carts) Clear(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"items": []models.CartLineItem{}}},
	)
	return err
}

type Orders struct {
	coll *mongo.Collection
}

func NewOrders(coll *mongo.Collection) *Orders {
	return &Orders{coll: coll}
}

func (s *Orders) Insert(ctx context.Context, order models.Order) error {
	_, err := s.coll.InsertOne(ctx, order)
	return err
}

func (s *Orders) Get(ctx context.Context, id, userID primitive.ObjectID) (models.Order, error) {
	var order models.Order
	err := s.coll.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, services.ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// MarkPaid records a verified payment and moves the order to processing.
func (s *Orders) MarkPaid(ctx context.Context, id, userID primitive.ObjectID, paymentID string) error {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{
			"paymentStatus": "completed",
			"status":        "processing",
			"paymentId":     paymentID,
			"updatedAt":     time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

type Products struct {
	coll *mongo.Collection
}

func NewProducts(coll *mongo.Collection) *Products {
	return &Products{coll: coll}
}

func (s *Products) Get(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, services.ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *Products) UpdateRating(ctx context.Context, id primitive.ObjectID, summary models.RatingSummary) error {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"rating": summary}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// InsertMany batch-writes products for the seed operation.
func (s *Products) InsertMany(ctx context.Context, products []models.Product) (int, error) {
	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	result, err := s.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(result.InsertedIDs), nil
}

type Reviews struct {
	coll *mongo.Collection
}

func NewReviews(coll *mongo.Collection) *Reviews {
	return &Reviews{coll: coll}
}

func (s *Reviews) Insert(ctx context.Context, review models.Review) error {
	_, err := s.coll.InsertOne(ctx, review)
	return err
}

func (s *Reviews) ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"productId": productID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]models.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
