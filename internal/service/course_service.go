package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/student-progress-api/internal/dto"
	"github.com/noah-isme/student-progress-api/internal/models"
	"github.com/noah-isme/student-progress-api/internal/repository"
)

// ErrDuplicateCourseCode indicates another course already uses the code.
var ErrDuplicateCourseCode = errors.New("course with this code already exists")

// CourseService manages the course catalogue.
type CourseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Create(ctx context.Context, payload dto.CourseCreateRequest) (models.Course, error)
}

type courseService struct {
	repo      repository.CourseRepository
	validator *validator.Validate
	notifier  ChangeNotifier
	sanitizer textSanitizer
	logger    zerolog.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo repository.CourseRepository, validate *validator.Validate, notifier ChangeNotifier, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:      repo,
		validator: validate,
		notifier:  notifierOrNop(notifier),
		sanitizer: newTextSanitizer(),
		logger:    logger.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) List(ctx context.Context) ([]models.Course, error) {
	return s.repo.ListCourses(ctx)
}

func (s *courseService) Create(ctx context.Context, payload dto.CourseCreateRequest) (models.Course, error) {
	payload.Name = s.sanitizer.clean(payload.Name)
	payload.Code = strings.TrimSpace(payload.Code)
	payload.Description = s.sanitizer.cleanPtr(payload.Description)

	if err := s.validator.Struct(payload); err != nil {
		return models.Course{}, err
	}

	existing, err := s.repo.GetCourseByCode(ctx, payload.Code)
	if err != nil {
		return models.Course{}, err
	}
	if existing != nil {
		return models.Course{}, ErrDuplicateCourseCode
	}

	course, err := s.repo.CreateCourse(ctx, payload.Model())
	if err != nil {
		return models.Course{}, err
	}

	s.notifier.Notify(ctx, EntityCourse, ActionCreated, course.ID)
	return course, nil
}
