package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/student-progress-api/internal/service"
	"github.com/noah-isme/student-progress-api/internal/utils"
)

// StatisticsHandler exposes the dashboard aggregates.
type StatisticsHandler struct {
	service service.StatisticsService
	logger  zerolog.Logger
}

// NewStatisticsHandler constructs the handler.
func NewStatisticsHandler(service service.StatisticsService, logger zerolog.Logger) *StatisticsHandler {
	return &StatisticsHandler{
		service: service,
		logger:  logger.With().Str("component", "statistics_handler").Logger(),
	}
}

// Register attaches statistics endpoints to the router group.
func (h *StatisticsHandler) Register(router fiber.Router) {
	router.Get("", h.summary)
	router.Get("/courses", h.courses)
	router.Get("/grades", h.grades)
}

func (h *StatisticsHandler) summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(withRequestContext(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, summary)
}

func (h *StatisticsHandler) courses(c *fiber.Ctx) error {
	courses, err := h.service.Courses(withRequestContext(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, courses)
}

func (h *StatisticsHandler) grades(c *fiber.Ctx) error {
	bands, err := h.service.GradeDistribution(withRequestContext(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, bands)
}
