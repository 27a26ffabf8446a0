package stats

import (
	"math"

	"github.com/noah-isme/student-progress-api/internal/models"
)

var gradePoints = map[string]float64{
	"A+": 4.3,
	"A":  4.0,
	"A-": 3.7,
	"B+": 3.3,
	"B":  3.0,
	"B-": 2.7,
	"C+": 2.3,
	"C":  2.0,
	"C-": 1.7,
	"D":  1.0,
	"F":  0.0,
}

// GradePoints maps a letter grade to grade points. Unrecognised grades are worth 0.
func GradePoints(grade string) float64 {
	return gradePoints[grade]
}

// CourseStat is the per-course GPA roll-up shown on the statistics page.
type CourseStat struct {
	Course        string  `json:"course"`
	TotalStudents int     `json:"totalStudents"`
	AverageGPA    float64 `json:"averageGPA"`
	AverageGrade  int     `json:"averageGrade"`
}

// CourseStatistics rolls students up into their courses, matched by course name.
//
// Students without a grade or graded "N/A" do not count towards the average. Any other
// grade is averaged, and an unrecognised one contributes 0 points.
func CourseStatistics(courses []models.Course, students []models.Student) []CourseStat {
	result := make([]CourseStat, 0, len(courses))
	for _, course := range courses {
		stat := CourseStat{Course: course.Name}

		var (
			sum    float64
			graded int
		)
		for _, student := range students {
			if student.Course != course.Name {
				continue
			}
			stat.TotalStudents++
			if !counted(student.Grade) {
				continue
			}
			sum += GradePoints(*student.Grade)
			graded++
		}

		average := 0.0
		if graded > 0 {
			average = sum / float64(graded)
		}
		stat.AverageGPA = Round(average, 2)
		stat.AverageGrade = int(math.Round(average * 25))

		result = append(result, stat)
	}
	return result
}

func counted(grade *string) bool {
	return grade != nil && *grade != "" && *grade != models.StudentGradeUnset
}

// Letter bands reported by GradeDistribution.
var gradeBands = []string{"A", "B", "C", "D", "F"}

// GradeBand is one slice of the grade distribution chart.
type GradeBand struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

// GradeDistribution counts students per letter band. Only grades found in the grade point
// table are counted, so "N/A" and free-form values are left out.
func GradeDistribution(students []models.Student) []GradeBand {
	counts := make(map[string]int, len(gradeBands))
	for _, student := range students {
		if student.Grade == nil {
			continue
		}
		grade := *student.Grade
		if _, ok := gradePoints[grade]; !ok {
			continue
		}
		counts[grade[:1]]++
	}

	bands := make([]GradeBand, 0, len(gradeBands))
	for _, band := range gradeBands {
		bands = append(bands, GradeBand{Grade: band, Count: counts[band]})
	}
	return bands
}
