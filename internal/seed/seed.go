// Package seed inserts a small sample dataset for development setups. It
// only runs when enabled in configuration and only against a database that
// has not been populated yet.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/oguzhan/uniregistry/internal/app/models"
	"github.com/oguzhan/uniregistry/internal/app/repositories"
)

// CreateSampleData inserts a handful of rows into each table so a fresh
// database has something to list and report on. A non-empty department
// table means the database is already in use, so nothing is touched.
func CreateSampleData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating sample data...")

	empty, err := tableEmpty(ctx, dbPool, "department")
	if err != nil {
		return err
	}
	if !empty {
		lgr.Info().Msg("Sample data already present, skipping seed")
		return nil
	}

	departments := []models.Department{
		{DepartmentNo: 1, DepartmentName: "Computer Engineering"},
		{DepartmentNo: 2, DepartmentName: "Mathematics"},
		{DepartmentNo: 3, DepartmentName: "Physics"},
	}
	for i := range departments {
		if _, err := repos.Departments.Create(ctx, &departments[i]); err != nil {
			return fmt.Errorf("seeding departments: %w", err)
		}
	}

	instructors := []models.Instructor{
		{InstructorID: 1, Name: "Ayse", Surname: "Demir", Salary: 9200, Age: 45, Email: "ayse.demir@university.edu", DepartmentNo: 1},
		{InstructorID: 2, Name: "Mehmet", Surname: "Kaya", Salary: 7800, Age: 38, Email: "mehmet.kaya@university.edu", DepartmentNo: 2},
		{InstructorID: 3, Name: "Elif", Surname: "Anderson", Salary: 8100, Age: 51, Email: "elif.anderson@university.edu", DepartmentNo: 3},
	}
	for i := range instructors {
		if _, err := repos.Instructors.Create(ctx, &instructors[i]); err != nil {
			return fmt.Errorf("seeding instructors: %w", err)
		}
	}

	advisor := int64(1)
	students := []models.Student{
		{StudentID: 1, Name: "John", Surname: "Johnson", Age: 21, Email: "john.johnson@student.edu", RegistrationYear: 2022, Grade: 3.1, DepartmentNo: 1, AdvisorID: &advisor},
		{StudentID: 2, Name: "Emma", Surname: "Wilson", Age: 22, Email: "emma.wilson@student.edu", RegistrationYear: 2021, Grade: 3.6, DepartmentNo: 2, AdvisorID: &advisor},
		{StudentID: 3, Name: "Deniz", Surname: "Yilmaz", Age: 20, Email: "deniz.yilmaz@student.edu", RegistrationYear: 2023, Grade: 2.8, DepartmentNo: 1, AdvisorID: nil},
	}
	for i := range students {
		if _, err := repos.Students.Create(ctx, &students[i]); err != nil {
			return fmt.Errorf("seeding students: %w", err)
		}
	}

	courses := []models.Course{
		{CourseID: 1, CourseName: "Algorithms", Credit: 6, Semester: "Fall", InstructorID: 1, DepartmentNo: 1},
		{CourseID: 2, CourseName: "Linear Algebra", Credit: 5, Semester: "Fall", InstructorID: 2, DepartmentNo: 2},
		{CourseID: 3, CourseName: "Quantum Mechanics", Credit: 7, Semester: "Spring", InstructorID: 3, DepartmentNo: 3},
	}
	for i := range courses {
		if _, err := repos.Courses.Create(ctx, &courses[i]); err != nil {
			return fmt.Errorf("seeding courses: %w", err)
		}
	}

	now := time.Now()
	enrollments := []models.Enrollment{
		{EnrollmentID: 1, StudentID: 1, CourseID: 1, Grade: "A", EnrollmentDate: now.AddDate(0, -2, 0), Semester: "Fall"},
		{EnrollmentID: 2, StudentID: 2, CourseID: 2, Grade: "B", EnrollmentDate: now.AddDate(0, -1, 0), Semester: "Fall"},
		{EnrollmentID: 3, StudentID: 1, CourseID: 2, Grade: "A", EnrollmentDate: now.AddDate(0, 0, -10), Semester: "Fall"},
	}
	for i := range enrollments {
		if _, err := repos.Enrollments.Create(ctx, &enrollments[i]); err != nil {
			return fmt.Errorf("seeding enrollments: %w", err)
		}
	}

	payments := []models.Payment{
		{StudentID: 1, PaymentStatus: "completed", PaymentMethod: "credit_card", PaymentDate: now.AddDate(0, 0, -15), PaymentAmount: 3500},
		{StudentID: 2, PaymentStatus: "completed", PaymentMethod: "bank_transfer", PaymentDate: now.AddDate(0, 0, -5), PaymentAmount: 6200},
		{StudentID: 3, PaymentStatus: "pending", PaymentMethod: "credit_card", PaymentDate: now.AddDate(0, -3, 0), PaymentAmount: 1800},
	}
	for i := range payments {
		if _, err := repos.Payments.Create(ctx, &payments[i]); err != nil {
			return fmt.Errorf("seeding payments: %w", err)
		}
	}

	lgr.Info().Msg("Sample data created")
	return nil
}

func tableEmpty(ctx context.Context, dbPool *pgxpool.Pool, table string) (bool, error) {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s)`, table)
	if err := dbPool.QueryRow(ctx, query).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking %s rows: %w", table, err)
	}
	return !exists, nil
}
