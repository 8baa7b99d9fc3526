package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gcs-food-backend/domain"
	"gcs-food-backend/internal/api/presenters"
)

var referenceFields = []struct {
	err   error
	field string
}{
	{domain.ErrUnknownUser, "userId"},
	{domain.ErrUnknownNationality, "nationalityId"},
	{domain.ErrUnknownCategory, "categoryId"},
}

// createError maps the failures shared by the create endpoints.
func createError(c *fiber.Ctx, message string, err error) error {
	for _, rf := range referenceFields {
		if errors.Is(err, rf.err) {
			return presenters.FieldErrorResponse(c, domain.MessageUnknownReference, map[string]string{
				rf.field: rf.err.Error(),
			})
		}
	}
	if errors.Is(err, domain.ErrInvalidImage) {
		return presenters.FieldErrorResponse(c, domain.MessageInvalidImage, map[string]string{
			"imageUrl": err.Error(),
		})
	}
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
}
