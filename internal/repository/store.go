package repository

import (
	"context"

	"github.com/noah-isme/student-progress-api/internal/models"
	"github.com/noah-isme/student-progress-api/internal/stats"
)

// StudentRepository provides access to student records.
//
// Lookups return a nil record, not an error, when nothing matches.
type StudentRepository interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, id uint) (*models.Student, error)
	GetStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	CreateStudent(ctx context.Context, student models.Student) (models.Student, error)
	UpdateStudent(ctx context.Context, id uint, patch models.StudentPatch) (*models.Student, error)
	DeleteStudent(ctx context.Context, id uint) (bool, error)
	SearchStudents(ctx context.Context, query string) ([]models.Student, error)
}

// CourseRepository provides access to the course catalogue.
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id uint) (*models.Course, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
}

// AssignmentRepository provides access to assignments.
type AssignmentRepository interface {
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
	ListAssignmentsByStudent(ctx context.Context, studentID uint) ([]models.Assignment, error)
	GetAssignment(ctx context.Context, id uint) (*models.Assignment, error)
	CreateAssignment(ctx context.Context, assignment models.Assignment) (models.Assignment, error)
	UpdateAssignment(ctx context.Context, id uint, patch models.AssignmentPatch) (*models.Assignment, error)
}

// ProgressRepository provides access to progress records.
type ProgressRepository interface {
	ListProgress(ctx context.Context) ([]models.Progress, error)
	ListProgressByStudent(ctx context.Context, studentID uint) ([]models.Progress, error)
	GetProgress(ctx context.Context, id uint) (*models.Progress, error)
	CreateProgress(ctx context.Context, progress models.Progress) (models.Progress, error)
	UpdateProgress(ctx context.Context, id uint, patch models.ProgressPatch) (*models.Progress, error)
}

// Store is the full persistence capability set. MemoryStore and GormStore implement it and
// one of them is chosen at start up.
type Store interface {
	StudentRepository
	CourseRepository
	AssignmentRepository
	ProgressRepository
	GetStatistics(ctx context.Context) (stats.Summary, error)
}

func summarize(ctx context.Context, store Store) (stats.Summary, error) {
	students, err := store.ListStudents(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	courses, err := store.ListCourses(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	progress, err := store.ListProgress(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Summarize(students, courses, progress), nil
}
