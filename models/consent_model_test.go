package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConsentState(t *testing.T) {
	tests := []struct {
		raw  string
		want ConsentState
	}{
		{"accepted", ConsentAccepted},
		{"declined", ConsentDeclined},
		{"", ConsentUnset},
		{"yes", ConsentUnset},
		{"ACCEPTED", ConsentUnset},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseConsentState(tc.raw), "raw=%q", tc.raw)
	}
}

func TestConsentState_ResolveFirstChoiceWins(t *testing.T) {
	assert.Equal(t, ConsentAccepted, ConsentUnset.Resolve(ConsentAccepted))
	assert.Equal(t, ConsentDeclined, ConsentUnset.Resolve(ConsentDeclined))

	// Once set, later choices do not overwrite.
	assert.Equal(t, ConsentAccepted, ConsentAccepted.Resolve(ConsentDeclined))
	assert.Equal(t, ConsentDeclined, ConsentDeclined.Resolve(ConsentAccepted))
}

func TestConsentState_ResolveIgnoresInvalidChoice(t *testing.T) {
	assert.Equal(t, ConsentUnset, ConsentUnset.Resolve(ConsentUnset))
	assert.Equal(t, ConsentUnset, ConsentUnset.Resolve(ConsentState("maybe")))
}

func TestConsentState_IsSet(t *testing.T) {
	assert.False(t, ConsentUnset.IsSet())
	assert.True(t, ConsentAccepted.IsSet())
	assert.True(t, ConsentDeclined.IsSet())
}
