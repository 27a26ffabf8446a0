package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDPropagation(t *testing.T) {
	app := fiber.New()
	app.Use(CorrelationID())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(CorrelationIDFromContext(c.UserContext()))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Correlation-ID", "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, "abc-123", string(body))
	require.Equal(t, "abc-123", resp.Header.Get("X-Correlation-ID"))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	require.Len(t, resp.Header.Get("X-Correlation-ID"), 36)
}

func TestErrorHandlerHidesDetailsOutsideDevelopment(t *testing.T) {
	for name, tc := range map[string]struct {
		expose bool
		body   string
	}{
		"production":  {expose: false, body: `{"message":"internal server error"}`},
		"development": {expose: true, body: `{"message":"internal server error: disk full"}`},
	} {
		t.Run(name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zerolog.Nop(), tc.expose)})
			app.Get("/boom", func(*fiber.Ctx) error { return errors.New("disk full") })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			require.JSONEq(t, tc.body, string(body))
		})
	}
}

func TestErrorHandlerKeepsFiberErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zerolog.Nop(), false)})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	require.JSONEq(t, `{"message":"Cannot GET /missing"}`, string(body))
}

func TestRegisterRecoversPanics(t *testing.T) {
	logger := zerolog.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger, false)})
	Register(app, Config{Logger: &logger})
	app.Get("/api/panic", func(*fiber.Ctx) error { panic("unexpected") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/panic", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestWriteRateLimitOnlyThrottlesWrites(t *testing.T) {
	app := fiber.New()
	app.Use(WriteRateLimit("test", 2, time.Minute))
	app.Get("/items", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Post("/items", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/items", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/items", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestLatencyBucket(t *testing.T) {
	require.Equal(t, "<=25ms", latencyBucket(10*time.Millisecond))
	require.Equal(t, "<=250ms", latencyBucket(200*time.Millisecond))
	require.Equal(t, ">500ms", latencyBucket(time.Second))
}

func TestObservabilityLabelsSurviveBufferReuse(t *testing.T) {
	logger := zerolog.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger, false)})
	Register(app, Config{Logger: &logger})
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/api/widgets/:id", ok)
	app.Post("/api/widgets", ok)
	app.Put("/api/widgets/:id", ok)
	app.Delete("/api/widgets/:id", ok)

	sequence := []struct{ method, path string }{
		{http.MethodPost, "/api/widgets"},
		{http.MethodGet, "/api/widgets/1"},
		{http.MethodPut, "/api/widgets/1"},
		{http.MethodDelete, "/api/widgets/1"},
		{http.MethodGet, "/api/widgets/2"},
		{http.MethodGet, "/api/unknown-route"},
		{http.MethodPost, "/api/widgets"},
		{http.MethodDelete, "/api/widgets/2"},
	}
	for i := 0; i < 3; i++ {
		for _, step := range sequence {
			_, err := app.Test(httptest.NewRequest(step.method, step.path, nil))
			require.NoError(t, err)
		}
	}

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	methods := map[string]bool{}
	for _, family := range families {
		if family.GetName() != "api_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "method" {
					methods[label.GetValue()] = true
				}
			}
		}
	}
	for method := range methods {
		require.Contains(t, []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}, method)
	}
	require.Len(t, methods, 4)
}
