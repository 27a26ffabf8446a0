package observability

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestStatisticsCounterIncrements(t *testing.T) {
	counter := StatisticsComputations().WithLabelValues("summary", "ok")
	before := testutil.ToFloat64(counter)

	counter.Inc()

	require.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMetricsHandlerExposesCollectors(t *testing.T) {
	APIRequests().WithLabelValues("GET", "/api/students", "200").Inc()

	app := fiber.New()
	app.Get("/metrics", MetricsHandler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "api_requests_total"))
}
