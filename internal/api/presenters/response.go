package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gcs-food-backend/domain"
)

// ErrorLocalKey is where ErrorResponse leaves the underlying error for the
// request logger.
const ErrorLocalKey = "response_error"

type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SuccessResponse writes data as the bare JSON body.
func SuccessResponse(c *fiber.Ctx, data any, statusCode int) error {
	return c.Status(statusCode).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	if err != nil {
		c.Locals(ErrorLocalKey, err)
	}
	return c.Status(statusCode).JSON(ErrorBody{Error: message})
}

// FieldErrorResponse reports a 400 with one message per offending field.
func FieldErrorResponse(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: message, Fields: fields})
}

// ValidationErrorResponse turns validator errors into the per-field body.
// Field names are the json names registered on the validator.
func ValidationErrorResponse(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = describe(fe)
	}
	return FieldErrorResponse(c, domain.MessageFailedValidation, fields)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + fe.Param() + " entries"
	case "gt":
		return "must be greater than " + fe.Param()
	case "email":
		return "must be a valid email"
	case "difficulty":
		return "must be one of Fácil, Médio, Difícil"
	case "itemcolor":
		return "must be a palette color"
	default:
		return "is invalid"
	}
}
