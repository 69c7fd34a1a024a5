package responses

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"storefront-api/errs"
)

// FromError maps a taxonomy error onto the response envelope and the matching
// HTTP status. Anything outside the taxonomy is surfaced as a 500.
func FromError(c *fiber.Ctx, err error) error {
	var vErr *errs.ValidationError
	if errors.As(err, &vErr) {
		fields := fiber.Map{}
		for field, reason := range vErr.Fields {
			fields[field] = reason
		}
		return c.Status(fiber.StatusBadRequest).JSON(StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Validation failed",
			Result:  &fiber.Map{"fields": fields},
		})
	}

	var pErr *errs.PaymentError
	if errors.As(err, &pErr) {
		return c.Status(fiber.StatusPaymentRequired).JSON(StoreResponse{
			Status:  fiber.StatusPaymentRequired,
			Message: "Payment failed",
			Result:  &fiber.Map{"method": pErr.Method, "reason": pErr.Reason},
		})
	}

	var authErr *errs.AuthRequiredError
	if errors.As(err, &authErr) {
		return c.Status(fiber.StatusUnauthorized).JSON(StoreResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Authentication required",
			Result:  nil,
		})
	}

	var consentErr *errs.ConsentRequiredError
	if errors.As(err, &consentErr) {
		return c.Status(fiber.StatusForbidden).JSON(StoreResponse{
			Status:  fiber.StatusForbidden,
			Message: "Consent required",
			Result:  nil,
		})
	}

	var dsErr *errs.DataSourceError
	if errors.As(err, &dsErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "A backing service failed, please retry",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(StoreResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Internal server error",
		Result:  nil,
	})
}
