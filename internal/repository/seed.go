package repository

import (
	"context"

	"github.com/noah-isme/student-progress-api/internal/models"
)

// SeedDefaultCourses fills an empty course catalogue with the default courses. It returns the
// number of courses created.
func SeedDefaultCourses(ctx context.Context, courses CourseRepository) (int, error) {
	existing, err := courses.ListCourses(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	created := 0
	for _, course := range models.DefaultCourses() {
		if _, err := courses.CreateCourse(ctx, course); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
