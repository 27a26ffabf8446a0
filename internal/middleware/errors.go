package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/student-progress-api/internal/utils"
)

// ErrorHandler renders errors that escape the handlers. Fiber errors keep their status and
// message; anything else becomes a 500 whose detail is only shown when exposeDetails is set.
func ErrorHandler(logger zerolog.Logger, exposeDetails bool) fiber.ErrorHandler {
	logger = logger.With().Str("component", "error_handler").Logger()

	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return utils.SendError(c, fiberErr.Code, fiberErr.Message)
		}

		logger.Error().
			Err(err).
			Str("correlation_id", GetCorrelationID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("unhandled request error")

		message := "internal server error"
		if exposeDetails {
			message = message + ": " + err.Error()
		}
		return utils.SendError(c, fiber.StatusInternalServerError, message)
	}
}
