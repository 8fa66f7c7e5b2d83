package models

// Department represents a university department.
type Department struct {
	DepartmentNo   int64  `json:"department_no" db:"department_no" binding:"required"`
	DepartmentName string `json:"department_name" db:"department_name" binding:"required"`
}
