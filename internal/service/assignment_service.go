package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/student-progress-api/internal/dto"
	"github.com/noah-isme/student-progress-api/internal/models"
	"github.com/noah-isme/student-progress-api/internal/repository"
)

// ErrAssignmentNotFound indicates the assignment does not exist.
var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentService handles coursework records.
type AssignmentService interface {
	List(ctx context.Context) ([]models.Assignment, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.Assignment, error)
	Create(ctx context.Context, payload dto.AssignmentCreateRequest) (models.Assignment, error)
	Update(ctx context.Context, id uint, payload dto.AssignmentUpdateRequest) (models.Assignment, error)
}

type assignmentService struct {
	repo      repository.AssignmentRepository
	validator *validator.Validate
	notifier  ChangeNotifier
	sanitizer textSanitizer
	logger    zerolog.Logger
}

// NewAssignmentService constructs the assignment service.
func NewAssignmentService(repo repository.AssignmentRepository, validate *validator.Validate, notifier ChangeNotifier, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		repo:      repo,
		validator: validate,
		notifier:  notifierOrNop(notifier),
		sanitizer: newTextSanitizer(),
		logger:    logger.With().Str("component", "assignment_service").Logger(),
	}
}

func (s *assignmentService) List(ctx context.Context) ([]models.Assignment, error) {
	return s.repo.ListAssignments(ctx)
}

func (s *assignmentService) ListByStudent(ctx context.Context, studentID uint) ([]models.Assignment, error) {
	return s.repo.ListAssignmentsByStudent(ctx, studentID)
}

func (s *assignmentService) Create(ctx context.Context, payload dto.AssignmentCreateRequest) (models.Assignment, error) {
	payload.Title = s.sanitizer.clean(payload.Title)
	payload.Course = s.sanitizer.clean(payload.Course)

	if err := s.validator.Struct(payload); err != nil {
		return models.Assignment{}, err
	}

	assignment, err := s.repo.CreateAssignment(ctx, payload.Model())
	if err != nil {
		return models.Assignment{}, err
	}

	s.notifier.Notify(ctx, EntityAssignment, ActionCreated, assignment.ID)
	return assignment, nil
}

func (s *assignmentService) Update(ctx context.Context, id uint, payload dto.AssignmentUpdateRequest) (models.Assignment, error) {
	payload.Title = s.sanitizer.cleanPtr(payload.Title)
	payload.Course = s.sanitizer.cleanPtr(payload.Course)

	if err := s.validator.Struct(payload); err != nil {
		return models.Assignment{}, err
	}

	assignment, err := s.repo.UpdateAssignment(ctx, id, payload.Patch())
	if err != nil {
		return models.Assignment{}, err
	}
	if assignment == nil {
		return models.Assignment{}, ErrAssignmentNotFound
	}

	s.notifier.Notify(ctx, EntityAssignment, ActionUpdated, id)
	return *assignment, nil
}
