package handler

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/student-progress-api/internal/middleware"
	"github.com/noah-isme/student-progress-api/internal/service"
	"github.com/noah-isme/student-progress-api/internal/utils"
)

var (
	errInvalidIdentifier = errors.New("invalid identifier")
	errInvalidPayload    = errors.New("invalid payload")
)

// parseUintParam reads a numeric path id. Callers treat a malformed id like an id that
// matches no record.
func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	value := strings.TrimSpace(c.Params(name))
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errInvalidIdentifier
	}
	return uint(parsed), nil
}

func withRequestContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

// bindJSON decodes the request body as JSON regardless of the declared content type.
func bindJSON(c *fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return errInvalidPayload
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return errInvalidPayload
	}
	return nil
}

// bindPatch decodes a partial update. An empty body is an empty patch.
func bindPatch(c *fiber.Ctx, out interface{}) error {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return nil
	}
	return bindJSON(c, out)
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// respondError maps service errors onto HTTP responses. Unknown errors are handed to the
// application error handler, which renders them as 500s.
func respondError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	switch {
	case isValidationError(err):
		return utils.SendValidationError(c, err)
	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrAssignmentNotFound),
		errors.Is(err, service.ErrProgressNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrDuplicateCourseCode),
		errors.Is(err, service.ErrSearchQueryRequired):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		requestLogger(logger, c).Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return err
	}
}
