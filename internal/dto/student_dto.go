package dto

import "github.com/noah-isme/student-progress-api/internal/models"

// StudentCreateRequest is the payload accepted when registering a student.
type StudentCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone"`
	Course      string  `json:"course" validate:"required"`
	DateOfBirth string  `json:"dateOfBirth" validate:"required"`
	Grade       *string `json:"grade"`
	Status      *string `json:"status"`
}

// Model converts the request into a student record ready for insertion.
func (r StudentCreateRequest) Model() models.Student {
	return models.Student{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Course:      r.Course,
		DateOfBirth: r.DateOfBirth,
		Grade:       r.Grade,
		Status:      r.Status,
	}
}

// StudentUpdateRequest is a partial student update; omitted fields are left unchanged.
type StudentUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	Course      *string `json:"course" validate:"omitempty,min=1"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,min=1"`
	Grade       *string `json:"grade"`
	Status      *string `json:"status"`
}

// Patch converts the request into a store patch.
func (r StudentUpdateRequest) Patch() models.StudentPatch {
	return models.StudentPatch{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Course:      r.Course,
		DateOfBirth: r.DateOfBirth,
		Grade:       r.Grade,
		Status:      r.Status,
	}
}
