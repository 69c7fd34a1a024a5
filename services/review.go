package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-api/errs"
	"storefront-api/models"
)

type ReviewService struct {
	reviews  ReviewStore
	products ProductStore
}

func NewReviewService(reviews ReviewStore, products ProductStore) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

// Submit appends a review and recomputes the product's rating aggregate.
// Rating and comment are validated independently so both problems surface in
// one response. Requires an authenticated user.
func (s *ReviewService) Submit(ctx context.Context, userID, productID primitive.ObjectID, rating int, title, comment string) (models.Review, models.RatingSummary, error) {
	if userID.IsZero() {
		return models.Review{}, models.RatingSummary{}, &errs.AuthRequiredError{}
	}

	vErr := &errs.ValidationError{}
	if rating < 1 || rating > 5 {
		vErr.Add("rating", fmt.Sprintf("must be between 1 and 5, got %d", rating))
	}
	if strings.TrimSpace(comment) == "" {
		vErr.Add("comment", "must not be empty")
	}
	if len(vErr.Fields) > 0 {
		return models.Review{}, models.RatingSummary{}, vErr
	}

	if _, err := s.products.Get(ctx, productID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Review{}, models.RatingSummary{}, errs.NewValidationError("productId", "unknown product")
		}
		return models.Review{}, models.RatingSummary{}, &errs.DataSourceError{Op: "load product", Err: err}
	}

	review := models.Review{
		ID:        primitive.NewObjectID(),
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Title:     strings.TrimSpace(title),
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now(),
	}
	if err := s.reviews.Insert(ctx, review); err != nil {
		return models.Review{}, models.RatingSummary{}, &errs.DataSourceError{Op: "insert review", Err: err}
	}

	all, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return models.Review{}, models.RatingSummary{}, &errs.DataSourceError{Op: "list reviews", Err: err}
	}
	summary := models.ComputeRatingSummary(all)
	if err := s.products.UpdateRating(ctx, productID, summary); err != nil {
		return models.Review{}, models.RatingSummary{}, &errs.DataSourceError{Op: "update rating", Err: err}
	}

	return review, summary, nil
}

// ListByProduct returns the reviews shown on a product detail page.
func (s *ReviewService) ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	reviews, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, &errs.DataSourceError{Op: "list reviews", Err: err}
	}
	return reviews, nil
}
