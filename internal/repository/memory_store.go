package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/noah-isme/student-progress-api/internal/models"
	"github.com/noah-isme/student-progress-api/internal/stats"
)

// table is an insertion ordered map keyed by an auto-incrementing id.
type table[T any] struct {
	nextID uint
	order  []uint
	rows   map[uint]T
}

func newTable[T any]() *table[T] {
	return &table[T]{nextID: 1, rows: make(map[uint]T)}
}

func (t *table[T]) insert(build func(id uint) T) T {
	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *table[T]) get(id uint) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) put(id uint, row T) {
	t.rows[id] = row
}

func (t *table[T]) remove(id uint) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) filter(keep func(T) bool) []T {
	result := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			result = append(result, row)
		}
	}
	return result
}

// MemoryStore keeps every collection in process memory. Data is lost on restart; it backs the
// development mode and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	students    *table[models.Student]
	courses     *table[models.Course]
	assignments *table[models.Assignment]
	progress    *table[models.Progress]
	now         func() time.Time
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		students:    newTable[models.Student](),
		courses:     newTable[models.Course](),
		assignments: newTable[models.Assignment](),
		progress:    newTable[models.Progress](),
		now:         time.Now,
	}
}

func (s *MemoryStore) ListStudents(_ context.Context) ([]models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.students.filter(nil), nil
}

func (s *MemoryStore) GetStudent(_ context.Context, id uint) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	student, ok := s.students.get(id)
	if !ok {
		return nil, nil
	}
	return &student, nil
}

func (s *MemoryStore) GetStudentByEmail(_ context.Context, email string) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := s.students.filter(func(student models.Student) bool {
		return student.Email == email
	})
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (s *MemoryStore) CreateStudent(_ context.Context, input models.Student) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now().UTC()
	return s.students.insert(func(id uint) models.Student {
		student := models.PrepareStudent(input, now)
		student.ID = id
		return student
	}), nil
}

func (s *MemoryStore) UpdateStudent(_ context.Context, id uint, patch models.StudentPatch) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, ok := s.students.get(id)
	if !ok {
		return nil, nil
	}
	patch.Apply(&student)
	student.LastActivity = s.now().UTC()
	s.students.put(id, student)
	return &student, nil
}

// DeleteStudent removes the student only. Assignments and progress that reference it are kept.
func (s *MemoryStore) DeleteStudent(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.students.remove(id), nil
}

func (s *MemoryStore) SearchStudents(_ context.Context, query string) ([]models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(query)
	return s.students.filter(func(student models.Student) bool {
		return strings.Contains(strings.ToLower(student.Name), needle) ||
			strings.Contains(strings.ToLower(student.Email), needle) ||
			strings.Contains(strings.ToLower(student.Course), needle)
	}), nil
}

func (s *MemoryStore) ListCourses(_ context.Context) ([]models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.courses.filter(nil), nil
}

func (s *MemoryStore) GetCourse(_ context.Context, id uint) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	course, ok := s.courses.get(id)
	if !ok {
		return nil, nil
	}
	return &course, nil
}

func (s *MemoryStore) GetCourseByCode(_ context.Context, code string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := s.courses.filter(func(course models.Course) bool {
		return course.Code == code
	})
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (s *MemoryStore) CreateCourse(_ context.Context, input models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.courses.insert(func(id uint) models.Course {
		course := input
		course.ID = id
		return course
	}), nil
}

func (s *MemoryStore) ListAssignments(_ context.Context) ([]models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assignments.filter(nil), nil
}

func (s *MemoryStore) ListAssignmentsByStudent(_ context.Context, studentID uint) ([]models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assignments.filter(func(assignment models.Assignment) bool {
		return assignment.StudentID == studentID
	}), nil
}

func (s *MemoryStore) GetAssignment(_ context.Context, id uint) (*models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assignment, ok := s.assignments.get(id)
	if !ok {
		return nil, nil
	}
	return &assignment, nil
}

func (s *MemoryStore) CreateAssignment(_ context.Context, input models.Assignment) (models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assignments.insert(func(id uint) models.Assignment {
		assignment := models.PrepareAssignment(input)
		assignment.ID = id
		return assignment
	}), nil
}

func (s *MemoryStore) UpdateAssignment(_ context.Context, id uint, patch models.AssignmentPatch) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	assignment, ok := s.assignments.get(id)
	if !ok {
		return nil, nil
	}
	patch.Apply(&assignment)
	s.assignments.put(id, assignment)
	return &assignment, nil
}

func (s *MemoryStore) ListProgress(_ context.Context) ([]models.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress.filter(nil), nil
}

func (s *MemoryStore) ListProgressByStudent(_ context.Context, studentID uint) ([]models.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress.filter(func(progress models.Progress) bool {
		return progress.StudentID == studentID
	}), nil
}

func (s *MemoryStore) GetProgress(_ context.Context, id uint) (*models.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	progress, ok := s.progress.get(id)
	if !ok {
		return nil, nil
	}
	return &progress, nil
}

func (s *MemoryStore) CreateProgress(_ context.Context, input models.Progress) (models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress.insert(func(id uint) models.Progress {
		progress := input
		progress.ID = id
		return progress
	}), nil
}

func (s *MemoryStore) UpdateProgress(_ context.Context, id uint, patch models.ProgressPatch) (*models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	progress, ok := s.progress.get(id)
	if !ok {
		return nil, nil
	}
	patch.Apply(&progress)
	s.progress.put(id, progress)
	return &progress, nil
}

// GetStatistics aggregates over one consistent view of the collections.
func (s *MemoryStore) GetStatistics(_ context.Context) (stats.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.Summarize(s.students.filter(nil), s.courses.filter(nil), s.progress.filter(nil)), nil
}
