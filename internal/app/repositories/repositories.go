package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository over the shared pool.
type Repositories struct {
	Departments *DepartmentRepository
	Instructors *InstructorRepository
	Students    *StudentRepository
	Courses     *CourseRepository
	Enrollments *EnrollmentRepository
	Payments    *PaymentRepository
	Reports     *ReportRepository
}

// NewRepositories creates all repositories against one pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Departments: NewDepartmentRepository(db),
		Instructors: NewInstructorRepository(db),
		Students:    NewStudentRepository(db),
		Courses:     NewCourseRepository(db),
		Enrollments: NewEnrollmentRepository(db),
		Payments:    NewPaymentRepository(db),
		Reports:     NewReportRepository(db),
	}
}
