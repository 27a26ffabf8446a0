package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/student-progress-api/internal/dto"
	"github.com/noah-isme/student-progress-api/internal/models"
	"github.com/noah-isme/student-progress-api/internal/service"
	"github.com/noah-isme/student-progress-api/internal/utils"
)

// ProgressHandler wires progress tracking routes.
type ProgressHandler struct {
	service service.ProgressService
	logger  zerolog.Logger
}

// NewProgressHandler constructs the handler.
func NewProgressHandler(service service.ProgressService, logger zerolog.Logger) *ProgressHandler {
	return &ProgressHandler{
		service: service,
		logger:  logger.With().Str("component", "progress_handler").Logger(),
	}
}

// Register attaches progress endpoints to the router group.
func (h *ProgressHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/student/:id", h.listByStudent)
	router.Post("", h.create)
	router.Put("/:id", h.update)
}

func (h *ProgressHandler) list(c *fiber.Ctx) error {
	records, err := h.service.List(withRequestContext(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, records)
}

func (h *ProgressHandler) listByStudent(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendJSON(c, fiber.StatusOK, []models.Progress{})
	}

	records, err := h.service.ListByStudent(withRequestContext(c), studentID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, records)
}

func (h *ProgressHandler) create(c *fiber.Ctx) error {
	var payload dto.ProgressCreateRequest
	if err := bindJSON(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	progress, err := h.service.Create(withRequestContext(c), payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusCreated, progress)
}

func (h *ProgressHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return respondError(c, h.logger, service.ErrProgressNotFound)
	}

	var payload dto.ProgressUpdateRequest
	if err := bindPatch(c, &payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	progress, err := h.service.Update(withRequestContext(c), id, payload)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, progress)
}
