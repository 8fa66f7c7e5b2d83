package models

// Course represents a course offered by a department and taught by an
// instructor.
type Course struct {
	CourseID     int64  `json:"course_id" db:"course_id" binding:"required"`
	CourseName   string `json:"course_name" db:"course_name" binding:"required"`
	Credit       int    `json:"credit" db:"credit"`
	Semester     string `json:"semester" db:"semester"`
	InstructorID int64  `json:"instructor_id" db:"instructor_id"`
	DepartmentNo int64  `json:"department_no" db:"department_no"`
}
