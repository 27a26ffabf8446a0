package models

// Assignment statuses.
const (
	AssignmentStatusPending   = "Pending"
	AssignmentStatusSubmitted = "Submitted"
	AssignmentStatusGraded    = "Graded"
	AssignmentStatusLate      = "Late"

	DefaultMaxGrade = "100"
)

// Assignment is a piece of coursework belonging to a student. Grades are kept as decimal text.
type Assignment struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	StudentID      uint    `gorm:"not null;index" json:"studentId"`
	Title          string  `gorm:"type:text;not null" json:"title"`
	Course         string  `gorm:"type:text;not null" json:"course"`
	Grade          *string `gorm:"type:text" json:"grade"`
	MaxGrade       *string `gorm:"type:text" json:"maxGrade"`
	SubmissionDate *string `gorm:"type:text" json:"submissionDate"`
	DueDate        string  `gorm:"type:text;not null" json:"dueDate"`
	Status         *string `gorm:"type:text" json:"status"`
}

// AssignmentPatch carries the fields of a partial assignment update.
type AssignmentPatch struct {
	StudentID      *uint
	Title          *string
	Course         *string
	Grade          *string
	MaxGrade       *string
	SubmissionDate *string
	DueDate        *string
	Status         *string
}

// Apply merges the patch into the assignment.
func (p AssignmentPatch) Apply(assignment *Assignment) {
	if p.StudentID != nil {
		assignment.StudentID = *p.StudentID
	}
	if p.Title != nil {
		assignment.Title = *p.Title
	}
	if p.Course != nil {
		assignment.Course = *p.Course
	}
	if p.Grade != nil {
		assignment.Grade = p.Grade
	}
	if p.MaxGrade != nil {
		assignment.MaxGrade = p.MaxGrade
	}
	if p.SubmissionDate != nil {
		assignment.SubmissionDate = p.SubmissionDate
	}
	if p.DueDate != nil {
		assignment.DueDate = *p.DueDate
	}
	if p.Status != nil {
		assignment.Status = p.Status
	}
}

// Columns returns the database columns touched by the patch.
func (p AssignmentPatch) Columns() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.StudentID != nil {
		updates["student_id"] = *p.StudentID
	}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Course != nil {
		updates["course"] = *p.Course
	}
	if p.Grade != nil {
		updates["grade"] = *p.Grade
	}
	if p.MaxGrade != nil {
		updates["max_grade"] = *p.MaxGrade
	}
	if p.SubmissionDate != nil {
		updates["submission_date"] = *p.SubmissionDate
	}
	if p.DueDate != nil {
		updates["due_date"] = *p.DueDate
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	return updates
}

// PrepareAssignment resets the id and applies column defaults.
func PrepareAssignment(input Assignment) Assignment {
	assignment := input
	assignment.ID = 0
	if assignment.MaxGrade == nil {
		assignment.MaxGrade = StringPtr(DefaultMaxGrade)
	}
	if assignment.Status == nil {
		assignment.Status = StringPtr(AssignmentStatusPending)
	}
	return assignment
}
