package models

// Instructor represents a teaching staff member assigned to a department.
type Instructor struct {
	InstructorID int64   `json:"instructor_id" db:"instructor_id" binding:"required"`
	Name         string  `json:"i_name" db:"i_name" binding:"required"`
	Surname      string  `json:"i_surname" db:"i_surname" binding:"required"`
	Salary       float64 `json:"salary" db:"salary"`
	Age          int     `json:"i_age" db:"i_age"`
	Email        string  `json:"i_mail" db:"i_mail"`
	DepartmentNo int64   `json:"department_no" db:"department_no"`
}
