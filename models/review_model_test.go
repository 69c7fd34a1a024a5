package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ratings(values ...int) []Review {
	reviews := make([]Review, 0, len(values))
	for _, v := range values {
		reviews = append(reviews, Review{Rating: v})
	}
	return reviews
}

func TestComputeRatingSummary(t *testing.T) {
	summary := ComputeRatingSummary(ratings(5, 3, 4))

	assert.InDelta(t, 4.0, summary.Average, 1e-9)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, [5]int{0, 0, 1, 1, 1}, summary.Distribution)
}

func TestComputeRatingSummary_Empty(t *testing.T) {
	summary := ComputeRatingSummary(nil)

	assert.Zero(t, summary.Average)
	assert.Zero(t, summary.Count)
	assert.Equal(t, [5]int{}, summary.Distribution)
}

func TestComputeRatingSummary_AllFiveStars(t *testing.T) {
	summary := ComputeRatingSummary(ratings(5, 5, 5, 5))

	assert.InDelta(t, 5.0, summary.Average, 1e-9)
	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, [5]int{0, 0, 0, 0, 4}, summary.Distribution)
}

func TestComputeRatingSummary_SkipsOutOfRange(t *testing.T) {
	summary := ComputeRatingSummary(ratings(5, 0, 6, 3))

	assert.Equal(t, 2, summary.Count)
	assert.InDelta(t, 4.0, summary.Average, 1e-9)
}
