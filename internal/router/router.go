package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/student-progress-api/internal/config"
	"github.com/noah-isme/student-progress-api/internal/handler"
	"github.com/noah-isme/student-progress-api/internal/middleware"
	"github.com/noah-isme/student-progress-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	StudentHandler    *handler.StudentHandler
	CourseHandler     *handler.CourseHandler
	AssignmentHandler *handler.AssignmentHandler
	ProgressHandler   *handler.ProgressHandler
	StatisticsHandler *handler.StatisticsHandler
	ExportHandler     *handler.ExportHandler
	WriteLimiter      fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	limiter := deps.WriteLimiter
	if limiter == nil {
		limiter = middleware.WriteRateLimit("api", cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	}, limiter)
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students"))
	}
	if deps.CourseHandler != nil {
		deps.CourseHandler.Register(api.Group("/courses"))
	}
	if deps.AssignmentHandler != nil {
		deps.AssignmentHandler.Register(api.Group("/assignments"))
	}
	if deps.ProgressHandler != nil {
		deps.ProgressHandler.Register(api.Group("/progress"))
	}
	if deps.StatisticsHandler != nil {
		deps.StatisticsHandler.Register(api.Group("/statistics"))
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.Register(api.Group("/export"))
	}
}
