package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/student-progress-api/internal/dto"
	"github.com/noah-isme/student-progress-api/internal/models"
	"github.com/noah-isme/student-progress-api/internal/service"
	"github.com/noah-isme/student-progress-api/internal/utils"
)

// AssignmentHandler wires assignment HTTP routes.
type AssignmentHandler struct {
	service service.AssignmentService
	logger  zerolog.Logger
}

// NewAssignmentHandler constructs the handler.
func NewAssignmentHandler(service service.AssignmentService, logger zerolog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		service: service,
		logger:  logger.With().Str("component", "assignment_handler").Logger(),
	}
}

// Register attaches assignment endpoints to the router group.
func (h *AssignmentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/student/:id", h.listByStudent)
	router.Post("", h.create)
	router.Put("/:id", h.update)
}

func (h *AssignmentHandler) list(c *fiber.Ctx) error {
	assignments, err := h.service.List(withRequestContext(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, assignments)
}

func (h *AssignmentHandler) listByStudent(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendJSON(c, fiber.StatusOK, []models.Assignment{})
	}

	assignments, err := h.service.ListByStudent(withRequestContext(c), studentID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, assignments)
}

func (h *AssignmentHandler) create(c *fiber.Ctx) error {
	var payload dto.AssignmentCreateRequest
	if err := bindJSON(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	assignment, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusCreated, assignment)
}

func (h *AssignmentHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return respondError(c, h.logger, service.ErrAssignmentNotFound)
	}

	var payload dto.AssignmentUpdateRequest
	if err := bindPatch(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	assignment, err := h.service.Update(withRequestContext(c), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, assignment)
}
