package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-progress-api/internal/models"
	"github.com/noah-isme/student-progress-api/internal/repository"
)

func compileSchema(t *testing.T, name string) *jsonschema.Schema {
	t.Helper()
	schemaPath, err := filepath.Abs(filepath.Join("testdata", name))
	require.NoError(t, err)

	schema, err := jsonschema.NewCompiler().Compile("file://" + filepath.ToSlash(schemaPath))
	require.NoError(t, err)
	return schema
}

func seededStore(t *testing.T) repository.Store {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	_, err := repository.SeedDefaultCourses(ctx, store)
	require.NoError(t, err)

	for _, s := range []struct{ name, email, grade string }{
		{"Ada Lovelace", "ada@example.com", "A"},
		{"Alan Turing", "alan@example.com", "B+"},
	} {
		_, err := store.CreateStudent(ctx, models.Student{
			Name: s.name, Email: s.email, Course: "Computer Science", DateOfBirth: "2000-01-01", Grade: models.StringPtr(s.grade),
		})
		require.NoError(t, err)
	}
	_, err = store.CreateProgress(ctx, models.Progress{
		StudentID: 1, Course: "Computer Science", OverallGrade: models.StringPtr("87.5"), AttendanceRate: models.StringPtr("90"), LastUpdated: "2024-03-01",
	})
	require.NoError(t, err)
	return store
}

func TestStatisticsSummaryContract(t *testing.T) {
	schema := compileSchema(t, "statistics.schema.json")
	app := newTestApp(t, seededStore(t), testConfig())

	resp, body := doRequest(t, app, http.MethodGet, "/api/statistics", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.NoError(t, schema.Validate(payload))
	require.JSONEq(t, `{"totalStudents":2,"activeCourses":5,"averageGrade":87.5,"attendanceRate":90}`, string(body))
}

func TestCourseStatisticsContract(t *testing.T) {
	schema := compileSchema(t, "course_statistics.schema.json")
	app := newTestApp(t, seededStore(t), testConfig())

	resp, body := doRequest(t, app, http.MethodGet, "/api/statistics/courses", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload []interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Len(t, payload, 5)

	var generic interface{}
	require.NoError(t, json.Unmarshal(body, &generic))
	require.NoError(t, schema.Validate(generic))

	first := payload[0].(map[string]interface{})
	require.Equal(t, "Computer Science", first["course"])
	require.InDelta(t, 3.65, first["averageGPA"], 1e-9)
	require.InDelta(t, 91, first["averageGrade"], 1e-9)
}
