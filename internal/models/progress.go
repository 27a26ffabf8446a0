package models

// Progress tracks a student's standing in a course. Numeric values are decimal text.
type Progress struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	StudentID      uint    `gorm:"not null;index" json:"studentId"`
	Course         string  `gorm:"type:text;not null" json:"course"`
	OverallGrade   *string `gorm:"type:text" json:"overallGrade"`
	AttendanceRate *string `gorm:"type:text" json:"attendanceRate"`
	LastUpdated    string  `gorm:"type:text;not null" json:"lastUpdated"`
}

// TableName keeps the singular table name used by the front end's schema.
func (Progress) TableName() string {
	return "progress"
}

// ProgressPatch carries the fields of a partial progress update.
type ProgressPatch struct {
	StudentID      *uint
	Course         *string
	OverallGrade   *string
	AttendanceRate *string
	LastUpdated    *string
}

// Apply merges the patch into the progress record.
func (p ProgressPatch) Apply(progress *Progress) {
	if p.StudentID != nil {
		progress.StudentID = *p.StudentID
	}
	if p.Course != nil {
		progress.Course = *p.Course
	}
	if p.OverallGrade != nil {
		progress.OverallGrade = p.OverallGrade
	}
	if p.AttendanceRate != nil {
		progress.AttendanceRate = p.AttendanceRate
	}
	if p.LastUpdated != nil {
		progress.LastUpdated = *p.LastUpdated
	}
}

// Columns returns the database columns touched by the patch.
func (p ProgressPatch) Columns() map[string]interface{} {
	updates := make(map[string]interface{})
	if p.StudentID != nil {
		updates["student_id"] = *p.StudentID
	}
	if p.Course != nil {
		updates["course"] = *p.Course
	}
	if p.OverallGrade != nil {
		updates["overall_grade"] = *p.OverallGrade
	}
	if p.AttendanceRate != nil {
		updates["attendance_rate"] = *p.AttendanceRate
	}
	if p.LastUpdated != nil {
		updates["last_updated"] = *p.LastUpdated
	}
	return updates
}

// All returns every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{&Student{}, &Course{}, &Assignment{}, &Progress{}}
}
