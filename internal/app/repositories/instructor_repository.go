package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzhan/uniregistry/internal/app/models"
)

// InstructorRepository handles database operations for instructors
type InstructorRepository = CrudRepository[models.Instructor]

// NewInstructorRepository creates a new instructor repository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return NewCrudRepository(db, instructorDefinition())
}

func instructorDefinition() Definition[models.Instructor] {
	return Definition[models.Instructor]{
		Resource: "Instructor",
		Table:    "instructor",
		PKColumn: "instructor_id",
		Columns: []string{
			"instructor_id", "i_name", "i_surname", "salary", "i_age", "i_mail", "department_no",
		},
		InsertColumns: []string{
			"instructor_id", "i_name", "i_surname", "salary", "i_age", "i_mail", "department_no",
		},
		UpdateColumns: []string{
			"i_name", "i_surname", "salary", "i_age", "i_mail", "department_no",
		},
		InsertValues: func(i *models.Instructor) []any {
			return []any{i.InstructorID, i.Name, i.Surname, i.Salary, i.Age, i.Email, i.DepartmentNo}
		},
		UpdateValues: func(i *models.Instructor) []any {
			return []any{i.Name, i.Surname, i.Salary, i.Age, i.Email, i.DepartmentNo}
		},
	}
}
