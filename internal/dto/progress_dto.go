package dto

import "github.com/noah-isme/student-progress-api/internal/models"

// ProgressCreateRequest is the payload accepted when recording progress.
type ProgressCreateRequest struct {
	StudentID      uint    `json:"studentId" validate:"required"`
	Course         string  `json:"course" validate:"required"`
	OverallGrade   *string `json:"overallGrade" validate:"omitempty,numeric"`
	AttendanceRate *string `json:"attendanceRate" validate:"omitempty,percent"`
	LastUpdated    string  `json:"lastUpdated" validate:"required"`
}

// Model converts the request into a progress record.
func (r ProgressCreateRequest) Model() models.Progress {
	return models.Progress{
		StudentID:      r.StudentID,
		Course:         r.Course,
		OverallGrade:   r.OverallGrade,
		AttendanceRate: r.AttendanceRate,
		LastUpdated:    r.LastUpdated,
	}
}

// ProgressUpdateRequest is a partial progress update.
type ProgressUpdateRequest struct {
	StudentID      *uint   `json:"studentId" validate:"omitempty,gt=0"`
	Course         *string `json:"course" validate:"omitempty,min=1"`
	OverallGrade   *string `json:"overallGrade" validate:"omitempty,numeric"`
	AttendanceRate *string `json:"attendanceRate" validate:"omitempty,percent"`
	LastUpdated    *string `json:"lastUpdated" validate:"omitempty,min=1"`
}

// Patch converts the request into a store patch.
func (r ProgressUpdateRequest) Patch() models.ProgressPatch {
	return models.ProgressPatch{
		StudentID:      r.StudentID,
		Course:         r.Course,
		OverallGrade:   r.OverallGrade,
		AttendanceRate: r.AttendanceRate,
		LastUpdated:    r.LastUpdated,
	}
}
