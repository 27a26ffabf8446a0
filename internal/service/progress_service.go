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

// ErrProgressNotFound indicates the progress record does not exist.
var ErrProgressNotFound = errors.New("progress record not found")

// ProgressService handles per-course progress records.
type ProgressService interface {
	List(ctx context.Context) ([]models.Progress, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.Progress, error)
	Create(ctx context.Context, payload dto.ProgressCreateRequest) (models.Progress, error)
	Update(ctx context.Context, id uint, payload dto.ProgressUpdateRequest) (models.Progress, error)
}

type progressService struct {
	repo      repository.ProgressRepository
	validator *validator.Validate
	notifier  ChangeNotifier
	sanitizer textSanitizer
	logger    zerolog.Logger
}

// NewProgressService constructs the progress service.
func NewProgressService(repo repository.ProgressRepository, validate *validator.Validate, notifier ChangeNotifier, logger zerolog.Logger) ProgressService {
	return &progressService{
		repo:      repo,
		validator: validate,
		notifier:  notifierOrNop(notifier),
		sanitizer: newTextSanitizer(),
		logger:    logger.With().Str("component", "progress_service").Logger(),
	}
}

func (s *progressService) List(ctx context.Context) ([]models.Progress, error) {
	return s.repo.ListProgress(ctx)
}

func (s *progressService) ListByStudent(ctx context.Context, studentID uint) ([]models.Progress, error) {
	return s.repo.ListProgressByStudent(ctx, studentID)
}

func (s *progressService) Create(ctx context.Context, payload dto.ProgressCreateRequest) (models.Progress, error) {
	payload.Course = s.sanitizer.clean(payload.Course)

	if err := s.validator.Struct(payload); err != nil {
		return models.Progress{}, err
	}

	progress, err := s.repo.CreateProgress(ctx, payload.Model())
	if err != nil {
		return models.Progress{}, err
	}

	s.notifier.Notify(ctx, EntityProgress, ActionCreated, progress.ID)
	return progress, nil
}

func (s *progressService) Update(ctx context.Context, id uint, payload dto.ProgressUpdateRequest) (models.Progress, error) {
	payload.Course = s.sanitizer.cleanPtr(payload.Course)

	if err := s.validator.Struct(payload); err != nil {
		return models.Progress{}, err
	}

	progress, err := s.repo.UpdateProgress(ctx, id, payload.Patch())
	if err != nil {
		return models.Progress{}, err
	}
	if progress == nil {
		return models.Progress{}, ErrProgressNotFound
	}

	s.notifier.Notify(ctx, EntityProgress, ActionUpdated, id)
	return *progress, nil
}
