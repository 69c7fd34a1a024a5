package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/errs"
)

func TestRequireConsent_UncheckedBlocks(t *testing.T) {
	err := RequireConsent(false)

	var consentErr *errs.ConsentRequiredError
	require.ErrorAs(t, err, &consentErr)
}

func TestRequireConsent_CheckedPasses(t *testing.T) {
	assert.NoError(t, RequireConsent(true))
}
