package service

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/student-progress-api/internal/observability"
	"github.com/noah-isme/student-progress-api/internal/repository"
	"github.com/noah-isme/student-progress-api/internal/stats"
)

// StatisticsService serves aggregate figures. Every call recomputes from the store.
type StatisticsService interface {
	Summary(ctx context.Context) (stats.Summary, error)
	Courses(ctx context.Context) ([]stats.CourseStat, error)
	GradeDistribution(ctx context.Context) ([]stats.GradeBand, error)
}

type statisticsService struct {
	store  repository.Store
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewStatisticsService constructs the statistics service.
func NewStatisticsService(store repository.Store, logger zerolog.Logger) StatisticsService {
	return &statisticsService{
		store:  store,
		tracer: otel.Tracer("github.com/noah-isme/student-progress-api/internal/service/statistics"),
		logger: logger.With().Str("component", "statistics_service").Logger(),
	}
}

func (s *statisticsService) Summary(ctx context.Context) (stats.Summary, error) {
	ctx, span := s.tracer.Start(ctx, "statistics.summary")
	defer span.End()

	summary, err := s.store.GetStatistics(ctx)
	if err != nil {
		return stats.Summary{}, s.fail(span, "summary", err)
	}

	span.SetAttributes(
		attribute.Int("statistics.total_students", summary.TotalStudents),
		attribute.Int("statistics.active_courses", summary.ActiveCourses),
	)
	observability.StatisticsComputations().WithLabelValues("summary", "ok").Inc()
	return summary, nil
}

func (s *statisticsService) Courses(ctx context.Context) ([]stats.CourseStat, error) {
	ctx, span := s.tracer.Start(ctx, "statistics.courses")
	defer span.End()

	courses, err := s.store.ListCourses(ctx)
	if err != nil {
		return nil, s.fail(span, "courses", err)
	}
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, s.fail(span, "courses", err)
	}

	span.SetAttributes(attribute.Int("statistics.course_count", len(courses)))
	observability.StatisticsComputations().WithLabelValues("courses", "ok").Inc()
	return stats.CourseStatistics(courses, students), nil
}

func (s *statisticsService) GradeDistribution(ctx context.Context) ([]stats.GradeBand, error) {
	ctx, span := s.tracer.Start(ctx, "statistics.grades")
	defer span.End()

	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, s.fail(span, "grades", err)
	}

	observability.StatisticsComputations().WithLabelValues("grades", "ok").Inc()
	return stats.GradeDistribution(students), nil
}

func (s *statisticsService) fail(span trace.Span, kind string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, kind+"_failed")
	observability.StatisticsComputations().WithLabelValues(kind, "error").Inc()
	s.logger.Error().Err(err).Str("kind", kind).Msg("statistics aggregation failed")
	return err
}
