package models

// Course is an offered course. Students reference courses by name, not by id.
type Course struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:text;not null" json:"name"`
	Code        string  `gorm:"type:text;uniqueIndex;not null" json:"code"`
	Description *string `gorm:"type:text" json:"description"`
	IsActive    bool    `gorm:"not null" json:"isActive"`
}

// DefaultCourses lists the catalogue created on an empty store.
func DefaultCourses() []Course {
	return []Course{
		{Name: "Computer Science", Code: "CS101", Description: StringPtr("Introduction to Computer Science"), IsActive: true},
		{Name: "Mathematics", Code: "MATH101", Description: StringPtr("Advanced Mathematics"), IsActive: true},
		{Name: "Physics", Code: "PHYS101", Description: StringPtr("General Physics"), IsActive: true},
		{Name: "Chemistry", Code: "CHEM101", Description: StringPtr("General Chemistry"), IsActive: true},
		{Name: "Biology", Code: "BIO101", Description: StringPtr("General Biology"), IsActive: true},
	}
}
