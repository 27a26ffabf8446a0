package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-progress-api/internal/models"
	"github.com/noah-isme/student-progress-api/internal/observability"
	"github.com/noah-isme/student-progress-api/internal/repository"
	"github.com/noah-isme/student-progress-api/internal/stats"
)

func seedStatisticsStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()

	_, err := repository.SeedDefaultCourses(ctx, store)
	require.NoError(t, err)

	students := []struct {
		name, email, course, grade string
	}{
		{"Ada Lovelace", "ada@example.com", "Computer Science", "A"},
		{"Alan Turing", "alan@example.com", "Computer Science", "B+"},
		{"Marie Curie", "marie@example.com", "Physics", "N/A"},
	}
	for _, s := range students {
		_, err := store.CreateStudent(ctx, models.Student{
			Name:        s.name,
			Email:       s.email,
			Course:      s.course,
			DateOfBirth: "2000-01-01",
			Grade:       models.StringPtr(s.grade),
		})
		require.NoError(t, err)
	}

	for _, p := range []struct{ overall, attendance string }{{"90", "95"}, {"85", "85"}} {
		_, err := store.CreateProgress(ctx, models.Progress{
			StudentID:      1,
			Course:         "Computer Science",
			OverallGrade:   models.StringPtr(p.overall),
			AttendanceRate: models.StringPtr(p.attendance),
			LastUpdated:    "2024-03-01",
		})
		require.NoError(t, err)
	}
	return store
}

func TestStatisticsServiceSummary(t *testing.T) {
	svc := NewStatisticsService(seedStatisticsStore(t), zerolog.Nop())
	before := testutil.ToFloat64(observability.StatisticsComputations().WithLabelValues("summary", "ok"))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, stats.Summary{
		TotalStudents:  3,
		ActiveCourses:  5,
		AverageGrade:   87.5,
		AttendanceRate: 90,
	}, summary)

	after := testutil.ToFloat64(observability.StatisticsComputations().WithLabelValues("summary", "ok"))
	require.Equal(t, before+1, after)
}

func TestStatisticsServiceCourses(t *testing.T) {
	svc := NewStatisticsService(seedStatisticsStore(t), zerolog.Nop())

	courses, err := svc.Courses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 5)
	require.Equal(t, stats.CourseStat{Course: "Computer Science", TotalStudents: 2, AverageGPA: 3.65, AverageGrade: 91}, courses[0])
	require.Equal(t, stats.CourseStat{Course: "Physics", TotalStudents: 1}, courses[2])
}

func TestStatisticsServiceGradeDistribution(t *testing.T) {
	svc := NewStatisticsService(seedStatisticsStore(t), zerolog.Nop())

	bands, err := svc.GradeDistribution(context.Background())
	require.NoError(t, err)
	require.Equal(t, []stats.GradeBand{
		{Grade: "A", Count: 1},
		{Grade: "B", Count: 1},
		{Grade: "C", Count: 0},
		{Grade: "D", Count: 0},
		{Grade: "F", Count: 0},
	}, bands)
}

type failingStore struct {
	repository.Store
}

func (failingStore) GetStatistics(context.Context) (stats.Summary, error) {
	return stats.Summary{}, errors.New("connection reset")
}

func (failingStore) ListCourses(context.Context) ([]models.Course, error) {
	return nil, errors.New("connection reset")
}

func TestStatisticsServiceReportsStoreFailures(t *testing.T) {
	svc := NewStatisticsService(failingStore{}, zerolog.Nop())
	before := testutil.ToFloat64(observability.StatisticsComputations().WithLabelValues("summary", "error"))

	_, err := svc.Summary(context.Background())
	require.EqualError(t, err, "connection reset")

	_, err = svc.Courses(context.Background())
	require.Error(t, err)

	after := testutil.ToFloat64(observability.StatisticsComputations().WithLabelValues("summary", "error"))
	require.Equal(t, before+1, after)
}
