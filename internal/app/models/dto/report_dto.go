package dto

import "time"

// Row types for the reporting queries. Column names follow the schema so
// pgx.RowToStructByName can map results directly.

// CourseCreditRow is returned by the top-credit and above-average-credit
// reports.
type CourseCreditRow struct {
	CourseName string `json:"course_name" db:"course_name"`
	Credit     int    `json:"credit" db:"credit"`
}

// StudentCourseCountRow reports how many courses a student is enrolled in.
type StudentCourseCountRow struct {
	Name         string `json:"s_name" db:"s_name"`
	Surname      string `json:"s_surname" db:"s_surname"`
	TotalCourses int64  `json:"total_courses" db:"total_courses"`
}

// DepartmentStudentCountRow reports the student headcount of a department.
type DepartmentStudentCountRow struct {
	DepartmentName string `json:"department_name" db:"department_name"`
	StudentCount   int64  `json:"student_count" db:"student_count"`
}

// StudentPaymentTotalRow reports the summed payments of a student.
type StudentPaymentTotalRow struct {
	Name      string  `json:"s_name" db:"s_name"`
	Surname   string  `json:"s_surname" db:"s_surname"`
	TotalPaid float64 `json:"total_paid" db:"total_paid"`
}

// CourseEnrollmentTotalRow reports the enrollment total of a single course.
type CourseEnrollmentTotalRow struct {
	CourseName       string `json:"course_name" db:"course_name"`
	TotalEnrollments int64  `json:"total_enrollments" db:"total_enrollments"`
}

// RecentPaymentRow is a payment made within the reporting window, joined
// with the paying student's name.
type RecentPaymentRow struct {
	PaymentID     int64     `json:"payment_id" db:"payment_id"`
	Name          string    `json:"s_name" db:"s_name"`
	Surname       string    `json:"s_surname" db:"s_surname"`
	PaymentDate   time.Time `json:"payment_date" db:"payment_date"`
	PaymentAmount float64   `json:"payment_amount" db:"payment_amount"`
}

// DepartmentAvgCreditRow reports a department's average course credit.
type DepartmentAvgCreditRow struct {
	DepartmentName string  `json:"department_name" db:"department_name"`
	AverageCredit  float64 `json:"average_credit" db:"average_credit"`
}

// CourseHeadcountRow reports per-course enrollment headcount, zero included.
type CourseHeadcountRow struct {
	CourseName   string `json:"course_name" db:"course_name"`
	StudentCount int64  `json:"student_count" db:"student_count"`
}

// StudentNameRow carries just a student's name, for anti-join reports.
type StudentNameRow struct {
	Name    string `json:"s_name" db:"s_name"`
	Surname string `json:"s_surname" db:"s_surname"`
}

// InstructorSalaryRow reports an instructor and their salary.
type InstructorSalaryRow struct {
	Name    string  `json:"i_name" db:"i_name"`
	Surname string  `json:"i_surname" db:"i_surname"`
	Salary  float64 `json:"salary" db:"salary"`
}

// DepartmentAvgSalaryRow reports a department's average instructor salary.
type DepartmentAvgSalaryRow struct {
	DepartmentName string  `json:"department_name" db:"department_name"`
	AverageSalary  float64 `json:"average_salary" db:"average_salary"`
}

// StudentPaymentSumRow reports students whose summed payments cleared the
// reporting threshold.
type StudentPaymentSumRow struct {
	Name         string  `json:"s_name" db:"s_name"`
	Surname      string  `json:"s_surname" db:"s_surname"`
	TotalPayment float64 `json:"total_payment" db:"total_payment"`
}

// EnrollmentDateRow carries an enrollment date already formatted by the
// store ("DD Mon YYYY").
type EnrollmentDateRow struct {
	Name          string `json:"s_name" db:"s_name"`
	Surname       string `json:"s_surname" db:"s_surname"`
	FormattedDate string `json:"formatted_date" db:"formatted_date"`
}
