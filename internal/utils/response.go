package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// MessageResponse is the body returned by operations without a resource to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// SendJSON writes data as the response body with the given status.
func SendJSON(c *fiber.Ctx, status int, data interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(data)
}

// SendMessage writes a plain message body.
func SendMessage(c *fiber.Ctx, status int, message string) error {
	return SendJSON(c, status, MessageResponse{Message: message})
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Message: message})
}

// SendValidationError reports field level validation failures as a 400.
func SendValidationError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return SendError(c, fiber.StatusBadRequest, "Validation error")
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, FieldError{
			Field:   fieldErr.Field(),
			Tag:     fieldErr.Tag(),
			Message: fieldErr.Error(),
		})
	}

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Message: "Validation error",
		Errors:  fields,
	})
}
