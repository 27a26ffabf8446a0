package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/student-progress-api/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves roster downloads.
type ExportHandler struct {
	service service.ExportService
	logger  zerolog.Logger
}

// NewExportHandler constructs the handler.
func NewExportHandler(service service.ExportService, logger zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger.With().Str("component", "export_handler").Logger(),
	}
}

// Register attaches export endpoints to the router group.
func (h *ExportHandler) Register(router fiber.Router) {
	router.Get("/students", h.studentsCSV)
	router.Get("/students.xlsx", h.studentsXLSX)
}

func (h *ExportHandler) studentsCSV(c *fiber.Ctx) error {
	body, err := h.service.StudentsCSV(withRequestContext(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="students.csv"`)
	return c.Status(fiber.StatusOK).Send(body)
}

func (h *ExportHandler) studentsXLSX(c *fiber.Ctx) error {
	buf, err := h.service.StudentsXLSX(withRequestContext(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="students.xlsx"`)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
