package consentController

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"storefront-api/models"
	"storefront-api/responses"
)

// ConsentCookie is the durable client-side marker for the GDPR banner choice.
const ConsentCookie = "storefront_consent"

const consentMaxAge = 365 * 24 * time.Hour

func stateFromCookie(c *fiber.Ctx) models.ConsentState {
	return models.ParseConsentState(c.Cookies(ConsentCookie))
}

func writeConsentCookie(c *fiber.Ctx, state models.ConsentState) {
	c.Cookie(&fiber.Cookie{
		Name:     ConsentCookie,
		Value:    string(state),
		Expires:  time.Now().Add(consentMaxAge),
		HTTPOnly: false, // the banner script reads it to stay hidden
		SameSite: "Lax",
	})
}

// GetConsent reports the banner state for the current visitor.
func GetConsent(c *fiber.Ctx) error {
	state := stateFromCookie(c)
	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Consent state fetched",
		Result: &fiber.Map{
			"state":      string(state),
			"showBanner": !state.IsSet(),
		},
	})
}

// AcceptConsent records an accept choice. The first recorded choice wins;
// later calls cannot flip it.
func AcceptConsent(c *fiber.Ctx) error {
	return resolveConsent(c, models.ConsentAccepted)
}

// DeclineConsent records a decline choice.
func DeclineConsent(c *fiber.Ctx) error {
	return resolveConsent(c, models.ConsentDeclined)
}

func resolveConsent(c *fiber.Ctx, choice models.ConsentState) error {
	state := stateFromCookie(c).Resolve(choice)
	writeConsentCookie(c, state)

	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "Consent recorded",
		Result: &fiber.Map{
			"state":      string(state),
			"showBanner": false,
		},
	})
}
