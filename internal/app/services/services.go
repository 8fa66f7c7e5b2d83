package services

import (
	"github.com/oguzhan/uniregistry/internal/app/models"
	"github.com/oguzhan/uniregistry/internal/app/repositories"
)

// Services bundles the six entity services and the report service.
type Services struct {
	Departments *EntityService[models.Department]
	Instructors *EntityService[models.Instructor]
	Students    *EntityService[models.Student]
	Courses     *EntityService[models.Course]
	Enrollments *EntityService[models.Enrollment]
	Payments    *EntityService[models.Payment]
	Reports     *ReportService
}

// NewServices wires every service to its repository.
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Departments: NewEntityService[models.Department](repos.Departments, "Department"),
		Instructors: NewEntityService[models.Instructor](repos.Instructors, "Instructor"),
		Students:    NewEntityService[models.Student](repos.Students, "Student"),
		Courses:     NewEntityService[models.Course](repos.Courses, "Course"),
		Enrollments: NewEntityService[models.Enrollment](repos.Enrollments, "Enrollment"),
		Payments:    NewEntityService[models.Payment](repos.Payments, "Payment"),
		Reports:     NewReportService(repos.Reports),
	}
}
