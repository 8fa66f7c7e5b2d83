package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzhan/uniregistry/internal/app/models"
)

// StudentRepository handles database operations for students
type StudentRepository = CrudRepository[models.Student]

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return NewCrudRepository(db, studentDefinition())
}

func studentDefinition() Definition[models.Student] {
	return Definition[models.Student]{
		Resource: "Student",
		Table:    "student",
		PKColumn: "student_id",
		Columns: []string{
			"student_id", "s_name", "s_surname", "s_age", "s_email",
			"registration_year", "grade", "department_no", "advisor_id",
		},
		InsertColumns: []string{
			"student_id", "s_name", "s_surname", "s_age", "s_email",
			"registration_year", "grade", "department_no", "advisor_id",
		},
		UpdateColumns: []string{
			"s_name", "s_surname", "s_age", "s_email",
			"registration_year", "grade", "department_no", "advisor_id",
		},
		InsertValues: func(s *models.Student) []any {
			return []any{
				s.StudentID, s.Name, s.Surname, s.Age, s.Email,
				s.RegistrationYear, s.Grade, s.DepartmentNo, s.AdvisorID,
			}
		},
		UpdateValues: func(s *models.Student) []any {
			return []any{
				s.Name, s.Surname, s.Age, s.Email,
				s.RegistrationYear, s.Grade, s.DepartmentNo, s.AdvisorID,
			}
		},
	}
}
