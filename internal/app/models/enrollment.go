package models

import "time"

// Enrollment joins a student to a course for a semester.
type Enrollment struct {
	EnrollmentID   int64     `json:"enrollment_id" db:"enrollment_id" binding:"required"`
	StudentID      int64     `json:"student_id" db:"student_id" binding:"required"`
	CourseID       int64     `json:"course_id" db:"course_id" binding:"required"`
	Grade          string    `json:"grade" db:"grade"`
	EnrollmentDate time.Time `json:"enrollment_date" db:"enrollment_date"`
	Semester       string    `json:"semester" db:"semester"`
}
