// Package stats derives summary figures from raw student, course and progress records.
//
// Every figure is recomputed from the records passed in; nothing is cached, so edits made
// directly against the backing store are always reflected.
package stats

import (
	"math"
	"strconv"
	"strings"

	"github.com/noah-isme/student-progress-api/internal/models"
)

// Summary is the dashboard level aggregate.
type Summary struct {
	TotalStudents  int     `json:"totalStudents"`
	ActiveCourses  int     `json:"activeCourses"`
	AverageGrade   float64 `json:"averageGrade"`
	AttendanceRate float64 `json:"attendanceRate"`
}

// Summarize computes the dashboard summary over a snapshot of the collections.
func Summarize(students []models.Student, courses []models.Course, progress []models.Progress) Summary {
	activeCourses := 0
	for _, course := range courses {
		if course.IsActive {
			activeCourses++
		}
	}

	grades := make([]*string, 0, len(progress))
	attendance := make([]*string, 0, len(progress))
	for _, record := range progress {
		grades = append(grades, record.OverallGrade)
		attendance = append(attendance, record.AttendanceRate)
	}

	return Summary{
		TotalStudents:  len(students),
		ActiveCourses:  activeCourses,
		AverageGrade:   Round(MeanDecimal(grades), 1),
		AttendanceRate: Round(MeanDecimal(attendance), 1),
	}
}

// MeanDecimal averages the values that are present and parse as finite decimals.
// It returns 0 when no value qualifies.
func MeanDecimal(values []*string) float64 {
	var (
		sum   float64
		count int
	)
	for _, value := range values {
		parsed, ok := ParseDecimal(value)
		if !ok {
			continue
		}
		sum += parsed
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// ParseDecimal parses decimal text stored by the backing store. Absent, blank, non-numeric
// and non-finite values are rejected.
//
// The whole value must be a number. Text with a trailing suffix such as "87.5%" or "12abc"
// is rejected rather than read as its numeric prefix, so rows edited outside the API with
// such values drop out of averages instead of counting as 87.5 or 12.
func ParseDecimal(value *string) (float64, bool) {
	if value == nil {
		return 0, false
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}
	return parsed, true
}

// Round rounds value to the given number of decimal places, halves away from zero.
func Round(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}
