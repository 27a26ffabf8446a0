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

var (
	// ErrStudentNotFound indicates no student exists with the requested id.
	ErrStudentNotFound = errors.New("student not found")
	// ErrDuplicateEmail indicates another student already uses the email address.
	ErrDuplicateEmail = errors.New("student with this email already exists")
	// ErrSearchQueryRequired indicates a search was requested without a query.
	ErrSearchQueryRequired = errors.New("search query is required")
)

// StudentService orchestrates the student roster use cases.
type StudentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Search(ctx context.Context, query string) ([]models.Student, error)
	Get(ctx context.Context, id uint) (models.Student, error)
	Create(ctx context.Context, payload dto.StudentCreateRequest) (models.Student, error)
	Update(ctx context.Context, id uint, payload dto.StudentUpdateRequest) (models.Student, error)
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	notifier  ChangeNotifier
	sanitizer textSanitizer
	logger    zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, validate *validator.Validate, notifier ChangeNotifier, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validate,
		notifier:  notifierOrNop(notifier),
		sanitizer: newTextSanitizer(),
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	return s.repo.ListStudents(ctx)
}

func (s *studentService) Search(ctx context.Context, query string) ([]models.Student, error) {
	if query == "" {
		return nil, ErrSearchQueryRequired
	}
	return s.repo.SearchStudents(ctx, query)
}

func (s *studentService) Get(ctx context.Context, id uint) (models.Student, error) {
	student, err := s.repo.GetStudent(ctx, id)
	if err != nil {
		return models.Student{}, err
	}
	if student == nil {
		return models.Student{}, ErrStudentNotFound
	}
	return *student, nil
}

func (s *studentService) Create(ctx context.Context, payload dto.StudentCreateRequest) (models.Student, error) {
	payload.Name = s.sanitizer.clean(payload.Name)
	payload.Email = strings.TrimSpace(payload.Email)
	payload.Course = s.sanitizer.clean(payload.Course)
	payload.Phone = s.sanitizer.cleanPtr(payload.Phone)
	payload.Grade = s.sanitizer.cleanPtr(payload.Grade)
	payload.Status = s.sanitizer.cleanPtr(payload.Status)

	if err := s.validator.Struct(payload); err != nil {
		return models.Student{}, err
	}

	existing, err := s.repo.GetStudentByEmail(ctx, payload.Email)
	if err != nil {
		return models.Student{}, err
	}
	if existing != nil {
		return models.Student{}, ErrDuplicateEmail
	}

	student, err := s.repo.CreateStudent(ctx, payload.Model())
	if err != nil {
		return models.Student{}, err
	}

	s.logger.Info().Uint("student_id", student.ID).Msg("student registered")
	s.notifier.Notify(ctx, EntityStudent, ActionCreated, student.ID)
	return student, nil
}

func (s *studentService) Update(ctx context.Context, id uint, payload dto.StudentUpdateRequest) (models.Student, error) {
	payload.Name = s.sanitizer.cleanPtr(payload.Name)
	payload.Course = s.sanitizer.cleanPtr(payload.Course)
	payload.Phone = s.sanitizer.cleanPtr(payload.Phone)
	payload.Grade = s.sanitizer.cleanPtr(payload.Grade)
	payload.Status = s.sanitizer.cleanPtr(payload.Status)
	if payload.Email != nil {
		email := strings.TrimSpace(*payload.Email)
		payload.Email = &email
	}

	if err := s.validator.Struct(payload); err != nil {
		return models.Student{}, err
	}

	if payload.Email != nil {
		existing, err := s.repo.GetStudentByEmail(ctx, *payload.Email)
		if err != nil {
			return models.Student{}, err
		}
		if existing != nil && existing.ID != id {
			return models.Student{}, ErrDuplicateEmail
		}
	}

	student, err := s.repo.UpdateStudent(ctx, id, payload.Patch())
	if err != nil {
		return models.Student{}, err
	}
	if student == nil {
		return models.Student{}, ErrStudentNotFound
	}

	s.notifier.Notify(ctx, EntityStudent, ActionUpdated, id)
	return *student, nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.DeleteStudent(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStudentNotFound
	}

	s.logger.Info().Uint("student_id", id).Msg("student deleted")
	s.notifier.Notify(ctx, EntityStudent, ActionDeleted, id)
	return nil
}
