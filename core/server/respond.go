package server

import (
	apperrors "asset-registry/core/errors"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps an error to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return fiber.StatusBadRequest
	case apperrors.Is(err, apperrors.ErrDuplicateKey):
		return fiber.StatusConflict
	case apperrors.Is(err, apperrors.ErrMalformedFile):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondError writes err as {"error": ...}, adding the violation list for
// validation failures.
func RespondError(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}
	var ve *apperrors.ValidationError
	if apperrors.As(err, &ve) {
		body["violations"] = ve.Violations
	}
	return c.Status(StatusFor(err)).JSON(body)
}
