package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string {
	return &v
}

func TestValidatorReportsJSONFieldNames(t *testing.T) {
	validate := NewValidator()

	err := validate.Struct(StudentCreateRequest{Email: "not-an-email"})
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fieldErr.Field())
	}
	require.ElementsMatch(t, []string{"name", "email", "course", "dateOfBirth"}, fields)
}

func TestPercentValidation(t *testing.T) {
	validate := NewValidator()
	base := ProgressCreateRequest{StudentID: 1, Course: "Physics", LastUpdated: "2024-03-01"}

	for _, valid := range []string{"0", "55.5", "100"} {
		req := base
		req.AttendanceRate = strPtr(valid)
		require.NoError(t, validate.Struct(req), valid)
	}

	for _, invalid := range []string{"-1", "100.01", "abc", ""} {
		req := base
		req.AttendanceRate = strPtr(invalid)
		require.Error(t, validate.Struct(req), invalid)
	}

	require.NoError(t, validate.Struct(base))
}

func TestUpdateRequestsAllowEmptyPayload(t *testing.T) {
	validate := NewValidator()
	require.NoError(t, validate.Struct(StudentUpdateRequest{}))
	require.NoError(t, validate.Struct(AssignmentUpdateRequest{}))
	require.NoError(t, validate.Struct(ProgressUpdateRequest{}))

	require.Error(t, validate.Struct(AssignmentUpdateRequest{Status: strPtr("Done")}))
}

func TestCourseCreateRequestDefaultsActive(t *testing.T) {
	require.True(t, CourseCreateRequest{Name: "Art", Code: "ART1"}.Model().IsActive)

	inactive := false
	require.False(t, CourseCreateRequest{Name: "Art", Code: "ART1", IsActive: &inactive}.Model().IsActive)
}
