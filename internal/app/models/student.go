package models

// Student represents an enrolled student. AdvisorID is nullable because a
// student may not have an advisor assigned yet.
type Student struct {
	StudentID        int64   `json:"student_id" db:"student_id" binding:"required"`
	Name             string  `json:"s_name" db:"s_name" binding:"required"`
	Surname          string  `json:"s_surname" db:"s_surname" binding:"required"`
	Age              int     `json:"s_age" db:"s_age"`
	Email            string  `json:"s_email" db:"s_email"`
	RegistrationYear int     `json:"registration_year" db:"registration_year"`
	Grade            float64 `json:"grade" db:"grade"`
	DepartmentNo     int64   `json:"department_no" db:"department_no"`
	AdvisorID        *int64  `json:"advisor_id" db:"advisor_id"`
}
