package dto

import "github.com/noah-isme/student-progress-api/internal/models"

// AssignmentCreateRequest is the payload accepted when creating an assignment.
type AssignmentCreateRequest struct {
	StudentID      uint    `json:"studentId" validate:"required"`
	Title          string  `json:"title" validate:"required"`
	Course         string  `json:"course" validate:"required"`
	Grade          *string `json:"grade" validate:"omitempty,numeric"`
	MaxGrade       *string `json:"maxGrade" validate:"omitempty,numeric"`
	SubmissionDate *string `json:"submissionDate"`
	DueDate        string  `json:"dueDate" validate:"required"`
	Status         *string `json:"status" validate:"omitempty,oneof=Pending Submitted Graded Late"`
}

// Model converts the request into an assignment record.
func (r AssignmentCreateRequest) Model() models.Assignment {
	return models.Assignment{
		StudentID:      r.StudentID,
		Title:          r.Title,
		Course:         r.Course,
		Grade:          r.Grade,
		MaxGrade:       r.MaxGrade,
		SubmissionDate: r.SubmissionDate,
		DueDate:        r.DueDate,
		Status:         r.Status,
	}
}

// AssignmentUpdateRequest is a partial assignment update.
type AssignmentUpdateRequest struct {
	StudentID      *uint   `json:"studentId" validate:"omitempty,gt=0"`
	Title          *string `json:"title" validate:"omitempty,min=1"`
	Course         *string `json:"course" validate:"omitempty,min=1"`
	Grade          *string `json:"grade" validate:"omitempty,numeric"`
	MaxGrade       *string `json:"maxGrade" validate:"omitempty,numeric"`
	SubmissionDate *string `json:"submissionDate"`
	DueDate        *string `json:"dueDate" validate:"omitempty,min=1"`
	Status         *string `json:"status" validate:"omitempty,oneof=Pending Submitted Graded Late"`
}

// Patch converts the request into a store patch.
func (r AssignmentUpdateRequest) Patch() models.AssignmentPatch {
	return models.AssignmentPatch{
		StudentID:      r.StudentID,
		Title:          r.Title,
		Course:         r.Course,
		Grade:          r.Grade,
		MaxGrade:       r.MaxGrade,
		SubmissionDate: r.SubmissionDate,
		DueDate:        r.DueDate,
		Status:         r.Status,
	}
}
