package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/noah-isme/student-progress-api/internal/models"
	"github.com/noah-isme/student-progress-api/internal/repository"
)

// CSVHeader is the first line of the roster export.
const CSVHeader = "ID,Name,Email,Phone,Course,Grade,Status,Enrollment Date"

var exportColumns = []string{"ID", "Name", "Email", "Phone", "Course", "Grade", "Status", "Enrollment Date"}

// ExportService renders the student roster for download.
type ExportService interface {
	StudentsCSV(ctx context.Context) ([]byte, error)
	StudentsXLSX(ctx context.Context) (*bytes.Buffer, error)
}

type exportService struct {
	repo   repository.StudentRepository
	logger zerolog.Logger
}

// NewExportService constructs the export service.
func NewExportService(repo repository.StudentRepository, logger zerolog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger.With().Str("component", "export_service").Logger(),
	}
}

// StudentsCSV renders one quoted row per student. Embedded quotes are written as-is.
func (s *exportService) StudentsCSV(ctx context.Context) ([]byte, error) {
	students, err := s.repo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]string, 0, len(students))
	for _, student := range students {
		rows = append(rows, fmt.Sprintf(`%d,"%s","%s","%s","%s","%s","%s","%s"`,
			student.ID,
			student.Name,
			student.Email,
			models.StringValue(student.Phone),
			student.Course,
			models.StringValue(student.Grade),
			models.StringValue(student.Status),
			formatTimestamp(student.EnrollmentDate),
		))
	}

	var buf bytes.Buffer
	buf.WriteString(CSVHeader)
	buf.WriteString("\n")
	buf.WriteString(strings.Join(rows, "\n"))
	return buf.Bytes(), nil
}

// StudentsXLSX renders the same roster as a spreadsheet.
func (s *exportService) StudentsXLSX(ctx context.Context) (*bytes.Buffer, error) {
	students, err := s.repo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	const sheet = "Students"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, title := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", "H", 22); err != nil {
		return nil, err
	}

	for r, student := range students {
		values := []interface{}{
			student.ID,
			student.Name,
			student.Email,
			models.StringValue(student.Phone),
			student.Course,
			models.StringValue(student.Grade),
			models.StringValue(student.Status),
			formatTimestamp(student.EnrollmentDate),
		}
		for c, value := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}

	s.logger.Debug().Int("rows", len(students)).Msg("student workbook generated")
	return buf, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
