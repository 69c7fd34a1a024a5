package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a single product review. Reviews are append-only; they are never
// edited after creation.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Rating    int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Title     string             `bson:"title" json:"title"`
	Comment   string             `bson:"comment" json:"comment" validate:"required"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ComputeRatingSummary recomputes a product's rating aggregate from its full
// review set. Ratings outside 1..5 are not counted; the stores never persist
// them.
func ComputeRatingSummary(reviews []Review) RatingSummary {
	var summary RatingSummary
	sum := 0
	for _, r := range reviews {
		if r.Rating < 1 || r.Rating > 5 {
			continue
		}
		summary.Distribution[r.Rating-1]++
		summary.Count++
		sum += r.Rating
	}
	if summary.Count > 0 {
		summary.Average = float64(sum) / float64(summary.Count)
	}
	return summary
}
