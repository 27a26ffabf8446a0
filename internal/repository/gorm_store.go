package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/noah-isme/student-progress-api/internal/models"
	"github.com/noah-isme/student-progress-api/internal/stats"
)

// GormStore persists the collections in a relational database through gorm.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore constructs the durable store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

// Migrate creates or updates the tables backing the store.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(models.All()...)
}

func (s *GormStore) ListStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (s *GormStore) GetStudent(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	return first(s.db.WithContext(ctx).Where("id = ?", id), &student)
}

func (s *GormStore) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	return first(s.db.WithContext(ctx).Where("email = ?", email), &student)
}

func (s *GormStore) CreateStudent(ctx context.Context, input models.Student) (models.Student, error) {
	student := models.PrepareStudent(input, s.now().UTC())
	if err := s.db.WithContext(ctx).Create(&student).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func (s *GormStore) UpdateStudent(ctx context.Context, id uint, patch models.StudentPatch) (*models.Student, error) {
	updates := patch.Columns()
	updates["last_activity"] = s.now().UTC()

	var student models.Student
	return patchRecord(ctx, s.db, id, updates, &student)
}

// DeleteStudent removes the student only. Assignments and progress that reference it are kept.
func (s *GormStore) DeleteStudent(ctx context.Context, id uint) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&models.Student{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *GormStore) SearchStudents(ctx context.Context, query string) ([]models.Student, error) {
	like := "%" + escapeLike(strings.ToLower(query)) + "%"
	var students []models.Student
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\' OR LOWER(course) LIKE ? ESCAPE '\\'", like, like, like).
		Order("id ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (s *GormStore) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStore) GetCourse(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	return first(s.db.WithContext(ctx).Where("id = ?", id), &course)
}

func (s *GormStore) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	var course models.Course
	return first(s.db.WithContext(ctx).Where("code = ?", code), &course)
}

func (s *GormStore) CreateCourse(ctx context.Context, input models.Course) (models.Course, error) {
	course := input
	course.ID = 0
	if err := s.db.WithContext(ctx).Create(&course).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (s *GormStore) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *GormStore) ListAssignmentsByStudent(ctx context.Context, studentID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *GormStore) GetAssignment(ctx context.Context, id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	return first(s.db.WithContext(ctx).Where("id = ?", id), &assignment)
}

func (s *GormStore) CreateAssignment(ctx context.Context, input models.Assignment) (models.Assignment, error) {
	assignment := models.PrepareAssignment(input)
	if err := s.db.WithContext(ctx).Create(&assignment).Error; err != nil {
		return models.Assignment{}, err
	}
	return assignment, nil
}

func (s *GormStore) UpdateAssignment(ctx context.Context, id uint, patch models.AssignmentPatch) (*models.Assignment, error) {
	var assignment models.Assignment
	return patchRecord(ctx, s.db, id, patch.Columns(), &assignment)
}

func (s *GormStore) ListProgress(ctx context.Context) ([]models.Progress, error) {
	var progress []models.Progress
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *GormStore) ListProgressByStudent(ctx context.Context, studentID uint) ([]models.Progress, error) {
	var progress []models.Progress
	err := s.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id ASC").
		Find(&progress).Error
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *GormStore) GetProgress(ctx context.Context, id uint) (*models.Progress, error) {
	var progress models.Progress
	return first(s.db.WithContext(ctx).Where("id = ?", id), &progress)
}

func (s *GormStore) CreateProgress(ctx context.Context, input models.Progress) (models.Progress, error) {
	progress := input
	progress.ID = 0
	if err := s.db.WithContext(ctx).Create(&progress).Error; err != nil {
		return models.Progress{}, err
	}
	return progress, nil
}

func (s *GormStore) UpdateProgress(ctx context.Context, id uint, patch models.ProgressPatch) (*models.Progress, error) {
	var progress models.Progress
	return patchRecord(ctx, s.db, id, patch.Columns(), &progress)
}

// GetStatistics reads the three collections inside one transaction and aggregates them.
func (s *GormStore) GetStatistics(ctx context.Context) (stats.Summary, error) {
	var summary stats.Summary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		summary, err = summarize(ctx, &GormStore{db: tx, now: s.now})
		return err
	})
	return summary, err
}

func first[T any](query *gorm.DB, dest *T) (*T, error) {
	if err := query.First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dest, nil
}

// patchRecord applies updates to the row with the given id in a single transaction and returns
// the stored result, or nil when the row does not exist.
func patchRecord[T any](ctx context.Context, db *gorm.DB, id uint, updates map[string]interface{}, dest *T) (*T, error) {
	var found bool
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(dest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(dest).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(dest).Error
	})
	if err != nil || !found {
		return nil, err
	}
	return dest, nil
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
