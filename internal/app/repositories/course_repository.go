package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzhan/uniregistry/internal/app/models"
)

// CourseRepository handles database operations for courses
type CourseRepository = CrudRepository[models.Course]

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return NewCrudRepository(db, courseDefinition())
}

func courseDefinition() Definition[models.Course] {
	return Definition[models.Course]{
		Resource: "Course",
		Table:    "course",
		PKColumn: "course_id",
		Columns: []string{
			"course_id", "course_name", "credit", "semester", "instructor_id", "department_no",
		},
		InsertColumns: []string{
			"course_id", "course_name", "credit", "semester", "instructor_id", "department_no",
		},
		UpdateColumns: []string{
			"course_name", "credit", "semester", "instructor_id", "department_no",
		},
		InsertValues: func(c *models.Course) []any {
			return []any{c.CourseID, c.CourseName, c.Credit, c.Semester, c.InstructorID, c.DepartmentNo}
		},
		UpdateValues: func(c *models.Course) []any {
			return []any{c.CourseName, c.Credit, c.Semester, c.InstructorID, c.DepartmentNo}
		},
	}
}
