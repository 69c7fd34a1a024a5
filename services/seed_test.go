package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/errs"
)

func TestSeedDatabase(t *testing.T) {
	writer := &fakeBatchWriter{}

	summary, err := SeedDatabase(context.Background(), writer)
	require.NoError(t, err)

	assert.Contains(t, summary, "seeded")
	assert.Len(t, writer.inserted, len(CatalogFixtures()))
}

func TestSeedDatabase_TwiceDuplicatesWithoutError(t *testing.T) {
	writer := &fakeBatchWriter{}

	_, err := SeedDatabase(context.Background(), writer)
	require.NoError(t, err)
	summary, err := SeedDatabase(context.Background(), writer)
	require.NoError(t, err)
	assert.NotEmpty(t, summary)

	// No dedup: the second run doubles the records.
	assert.Len(t, writer.inserted, 2*len(CatalogFixtures()))
}

func TestSeedDatabase_Failure(t *testing.T) {
	writer := &fakeBatchWriter{err: assert.AnError}

	summary, err := SeedDatabase(context.Background(), writer)

	var dsErr *errs.DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Empty(t, summary)
}

func TestCatalogFixtures_Complete(t *testing.T) {
	for _, p := range CatalogFixtures() {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.Greater(t, p.Price, 0.0)
		assert.NotEmpty(t, p.Images)
	}
}
