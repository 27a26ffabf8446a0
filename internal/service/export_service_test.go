package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/noah-isme/student-progress-api/internal/models"
	"github.com/noah-isme/student-progress-api/internal/repository"
)

type rosterRepo struct {
	repository.StudentRepository
	students []models.Student
}

func (r rosterRepo) ListStudents(context.Context) ([]models.Student, error) {
	return r.students, nil
}

func exportRoster() []models.Student {
	enrolled := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	return []models.Student{
		{
			ID:             1,
			Name:           "Ada Lovelace",
			Email:          "ada@example.com",
			Phone:          models.StringPtr("555-0100"),
			Course:         "Computer Science",
			Grade:          models.StringPtr("A"),
			Status:         models.StringPtr("Active"),
			EnrollmentDate: enrolled,
		},
		{
			ID:             2,
			Name:           `Alan "Prof" Turing`,
			Email:          "alan@example.com",
			Course:         "Mathematics",
			Grade:          models.StringPtr("N/A"),
			Status:         models.StringPtr("Inactive"),
			EnrollmentDate: enrolled.Add(36 * time.Hour),
		},
	}
}

func TestExportServiceStudentsCSV(t *testing.T) {
	svc := NewExportService(rosterRepo{students: exportRoster()}, zerolog.Nop())

	body, err := svc.StudentsCSV(context.Background())
	require.NoError(t, err)

	expected := "ID,Name,Email,Phone,Course,Grade,Status,Enrollment Date\n" +
		`1,"Ada Lovelace","ada@example.com","555-0100","Computer Science","A","Active","2024-01-15T10:30:00.000Z"` + "\n" +
		`2,"Alan "Prof" Turing","alan@example.com","","Mathematics","N/A","Inactive","2024-01-16T22:30:00.000Z"`
	require.Equal(t, expected, string(body))
}

func TestExportServiceStudentsCSVEmptyRoster(t *testing.T) {
	svc := NewExportService(rosterRepo{}, zerolog.Nop())

	body, err := svc.StudentsCSV(context.Background())
	require.NoError(t, err)
	require.Equal(t, CSVHeader+"\n", string(body))
}

func TestExportServiceStudentsXLSX(t *testing.T) {
	svc := NewExportService(rosterRepo{students: exportRoster()}, zerolog.Nop())

	buf, err := svc.StudentsXLSX(context.Background())
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = workbook.Close() })

	require.Equal(t, []string{"Students"}, workbook.GetSheetList())

	rows, err := workbook.GetRows("Students")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, exportColumns, rows[0])
	require.Equal(t, []string{"1", "Ada Lovelace", "ada@example.com", "555-0100", "Computer Science", "A", "Active", "2024-01-15T10:30:00.000Z"}, rows[1])
	require.Equal(t, "", rows[2][3])
}
