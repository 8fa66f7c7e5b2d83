package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzhan/uniregistry/internal/app/models"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository = CrudRepository[models.Enrollment]

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return NewCrudRepository(db, enrollmentDefinition())
}

func enrollmentDefinition() Definition[models.Enrollment] {
	return Definition[models.Enrollment]{
		Resource: "Enrollment",
		Table:    "enrollment",
		PKColumn: "enrollment_id",
		Columns: []string{
			"enrollment_id", "student_id", "course_id", "grade", "enrollment_date", "semester",
		},
		InsertColumns: []string{
			"enrollment_id", "student_id", "course_id", "grade", "enrollment_date", "semester",
		},
		UpdateColumns: []string{
			"student_id", "course_id", "grade", "enrollment_date", "semester",
		},
		InsertValues: func(e *models.Enrollment) []any {
			return []any{e.EnrollmentID, e.StudentID, e.CourseID, e.Grade, e.EnrollmentDate, e.Semester}
		},
		UpdateValues: func(e *models.Enrollment) []any {
			return []any{e.StudentID, e.CourseID, e.Grade, e.EnrollmentDate, e.Semester}
		},
	}
}
