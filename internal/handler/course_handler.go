package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/student-progress-api/internal/dto"
	"github.com/noah-isme/student-progress-api/internal/service"
	"github.com/noah-isme/student-progress-api/internal/utils"
)

// CourseHandler wires the course catalogue routes.
type CourseHandler struct {
	service service.CourseService
	logger  zerolog.Logger
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(service service.CourseService, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		service: service,
		logger:  logger.With().Str("component", "course_handler").Logger(),
	}
}

// Register attaches course endpoints to the router group.
func (h *CourseHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *CourseHandler) list(c *fiber.Ctx) error {
	courses, err := h.service.List(withRequestContext(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, courses)
}

func (h *CourseHandler) create(c *fiber.Ctx) error {
	var payload dto.CourseCreateRequest
	if err := bindJSON(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	course, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusCreated, course)
}
