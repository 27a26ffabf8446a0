package dto

import "github.com/noah-isme/student-progress-api/internal/models"

// CourseCreateRequest is the payload accepted when adding a course.
type CourseCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Code        string  `json:"code" validate:"required"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// Model converts the request into a course record; courses are active unless stated otherwise.
func (r CourseCreateRequest) Model() models.Course {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return models.Course{
		Name:        r.Name,
		Code:        r.Code,
		Description: r.Description,
		IsActive:    active,
	}
}
