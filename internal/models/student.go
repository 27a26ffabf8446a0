package models

import "time"

// Student status and grade defaults applied when a record is created.
const (
	StudentStatusActive = "Active"
	StudentGradeUnset   = "N/A"
)

// Student represents an enrolled learner.
type Student struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Email          string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Phone          *string   `gorm:"type:text" json:"phone"`
	Course         string    `gorm:"type:text;not null" json:"course"`
	DateOfBirth    string    `gorm:"type:text;not null" json:"dateOfBirth"`
	Grade          *string   `gorm:"type:text" json:"grade"`
	Status         *string   `gorm:"type:text" json:"status"`
	EnrollmentDate time.Time `gorm:"not null" json:"enrollmentDate"`
	LastActivity   time.Time `gorm:"not null" json:"lastActivity"`
	Avatar         *string   `gorm:"type:text" json:"avatar"`
}

// StudentPatch carries the fields of a partial student update. Nil fields are left untouched.
type StudentPatch struct {
	Name        *string
	Email       *string
	Phone       *string
	Course      *string
	DateOfBirth *string
	Grade       *string
	Status      *string
}

// Apply merges the patch into the student.
func (p StudentPatch) Apply(student *Student) {
	if p.Name != nil {
		student.Name = *p.Name
	}
	if p.Email != nil {
		student.Email = *p.Email
	}
	if p.Phone != nil {
		student.Phone = p.Phone
	}
	if p.Course != nil {
		student.Course = *p.Course
	}
	if p.DateOfBirth != nil {
		student.DateOfBirth = *p.DateOfBirth
	}
	if p.Grade != nil {
		student.Grade = p.Grade
	}
	if p.Status != nil {
		student.Status = p.Status
	}
}

// Columns returns the database columns touched by the patch.
func (p StudentPatch) Columns() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.Phone != nil {
		updates["phone"] = *p.Phone
	}
	if p.Course != nil {
		updates["course"] = *p.Course
	}
	if p.DateOfBirth != nil {
		updates["date_of_birth"] = *p.DateOfBirth
	}
	if p.Grade != nil {
		updates["grade"] = *p.Grade
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	return updates
}

// PrepareStudent turns client supplied fields into a new record: server side fields are reset
// and column defaults applied.
func PrepareStudent(input Student, now time.Time) Student {
	student := input
	student.ID = 0
	student.EnrollmentDate = now
	student.LastActivity = now
	student.Avatar = nil
	if student.Grade == nil {
		student.Grade = StringPtr(StudentGradeUnset)
	}
	if student.Status == nil {
		student.Status = StringPtr(StudentStatusActive)
	}
	return student
}

// StringPtr returns a pointer to a copy of value.
func StringPtr(value string) *string {
	return &value
}

// StringValue dereferences value, returning "" for nil.
func StringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
