package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzhan/uniregistry/internal/app/models"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository = CrudRepository[models.Department]

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return NewCrudRepository(db, departmentDefinition())
}

func departmentDefinition() Definition[models.Department] {
	return Definition[models.Department]{
		Resource:      "Department",
		Table:         "department",
		PKColumn:      "department_no",
		Columns:       []string{"department_no", "department_name"},
		InsertColumns: []string{"department_no", "department_name"},
		UpdateColumns: []string{"department_name"},
		InsertValues: func(d *models.Department) []any {
			return []any{d.DepartmentNo, d.DepartmentName}
		},
		UpdateValues: func(d *models.Department) []any {
			return []any{d.DepartmentName}
		},
	}
}
