package models

// ConsentState is the visitor's data-processing consent choice. It starts
// unset, is set exactly once by a user action, and then persists across
// visits via a durable cookie.
type ConsentState string

const (
	ConsentUnset    ConsentState = "unset"
	ConsentAccepted ConsentState = "accepted"
	ConsentDeclined ConsentState = "declined"
)

// ParseConsentState maps a stored cookie value back to a state. Anything
// unrecognized (including an empty or tampered value) reads as unset, which
// re-shows the banner rather than guessing a choice.
func ParseConsentState(v string) ConsentState {
	switch ConsentState(v) {
	case ConsentAccepted, ConsentDeclined:
		return ConsentState(v)
	default:
		return ConsentUnset
	}
}

// Resolve applies a consent choice. The first accept or decline wins; once
// set, the state never transitions again.
func (s ConsentState) Resolve(choice ConsentState) ConsentState {
	if s != ConsentUnset {
		return s
	}
	if choice != ConsentAccepted && choice != ConsentDeclined {
		return s
	}
	return choice
}

// IsSet reports whether the banner should stay hidden.
func (s ConsentState) IsSet() bool {
	return s == ConsentAccepted || s == ConsentDeclined
}
