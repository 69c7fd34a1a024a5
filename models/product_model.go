package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RatingSummary is the denormalized review aggregate stored on each product.
// It is recomputed from the full review set whenever a review is appended.
type RatingSummary struct {
	Average      float64 `bson:"average" json:"average"`
	Count        int     `bson:"count" json:"count"`
	Distribution [5]int  `bson:"distribution" json:"distribution"` // index 0 = 1 star
}

type Product struct {
	ID          primitive.ObjectID `json:"productId,omitempty" bson:"_id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Brand       string             `bson:"brand" json:"brand" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Quantity    int                `bson:"quantity" json:"quantity" validate:"required,min=1"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	Images      []string           `bson:"images" json:"images" validate:"required,min=1,dive"`
	Rating      RatingSummary      `bson:"rating" json:"rating"`
}
