package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-progress-api/internal/models"
)

func str(v string) *string {
	return &v
}

func TestSummarizeFiltersMissingAndInvalidValues(t *testing.T) {
	progress := []models.Progress{
		{OverallGrade: str("85.0"), AttendanceRate: str("90")},
		{OverallGrade: str(""), AttendanceRate: nil},
		{OverallGrade: str("90.0"), AttendanceRate: str("95.5")},
		{OverallGrade: str("not-a-number"), AttendanceRate: str("abc")},
		{OverallGrade: nil, AttendanceRate: str("")},
	}

	summary := Summarize(nil, nil, progress)
	require.Equal(t, 87.5, summary.AverageGrade)
	require.Equal(t, 92.8, summary.AttendanceRate)
}

func TestSummarizeEmptyCollections(t *testing.T) {
	summary := Summarize(nil, nil, nil)
	require.Equal(t, Summary{}, summary)
	require.Zero(t, summary.AverageGrade)
	require.Zero(t, summary.AttendanceRate)
}

func TestSummarizeCountsStudentsAndActiveCourses(t *testing.T) {
	students := []models.Student{{ID: 1}, {ID: 2}, {ID: 3}}
	courses := []models.Course{
		{Name: "Physics", IsActive: true},
		{Name: "Latin", IsActive: false},
		{Name: "Biology", IsActive: true},
	}

	summary := Summarize(students, courses, nil)
	require.Equal(t, 3, summary.TotalStudents)
	require.Equal(t, 2, summary.ActiveCourses)
}

func TestSummarizeRoundsToOneDecimal(t *testing.T) {
	progress := []models.Progress{
		{OverallGrade: str("80")},
		{OverallGrade: str("80")},
		{OverallGrade: str("81")},
	}

	summary := Summarize(nil, nil, progress)
	require.Equal(t, 80.3, summary.AverageGrade)
}

func TestParseDecimalRejectsNonFinite(t *testing.T) {
	for _, input := range []string{"NaN", "Inf", "-Inf", "  ", "12abc", "87.5%"} {
		_, ok := ParseDecimal(str(input))
		require.False(t, ok, input)
	}

	value, ok := ParseDecimal(str(" 72.25 "))
	require.True(t, ok)
	require.Equal(t, 72.25, value)
}

func TestMeanDecimalSkipsValuesWithTrailingText(t *testing.T) {
	values := []*string{str("90"), str("87.5%"), str("12abc"), str("80")}
	require.Equal(t, 85.0, MeanDecimal(values))
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	require.Equal(t, 0.3, Round(0.25, 1))
	require.Equal(t, -0.3, Round(-0.25, 1))
	require.Equal(t, 3.65, Round(3.65, 2))
}
