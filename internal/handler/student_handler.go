package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/student-progress-api/internal/dto"
	"github.com/noah-isme/student-progress-api/internal/service"
	"github.com/noah-isme/student-progress-api/internal/utils"
)

// StudentHandler wires the student roster routes.
type StudentHandler struct {
	service service.StudentService
	logger  zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(service service.StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		logger:  logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches student endpoints to the router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/search", h.search)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	students, err := h.service.List(withRequestContext(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, students)
}

func (h *StudentHandler) search(c *fiber.Ctx) error {
	students, err := h.service.Search(withRequestContext(c), c.Query("q"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, students)
}

func (h *StudentHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return respondError(c, h.logger, service.ErrStudentNotFound)
	}

	student, err := h.service.Get(withRequestContext(c), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, student)
}

func (h *StudentHandler) create(c *fiber.Ctx) error {
	var payload dto.StudentCreateRequest
	if err := bindJSON(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	student, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusCreated, student)
}

func (h *StudentHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return respondError(c, h.logger, service.ErrStudentNotFound)
	}

	var payload dto.StudentUpdateRequest
	if err := bindPatch(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	student, err := h.service.Update(withRequestContext(c), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, student)
}

func (h *StudentHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return respondError(c, h.logger, service.ErrStudentNotFound)
	}

	if err := h.service.Delete(withRequestContext(c), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendMessage(c, fiber.StatusOK, "Student deleted successfully")
}
