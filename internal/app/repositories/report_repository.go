package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzhan/uniregistry/internal/app/models"
	"github.com/oguzhan/uniregistry/internal/app/models/dto"
	"github.com/oguzhan/uniregistry/internal/pkg/apperrors"
)

// The report statements are fixed text: parameterless, read-only, safe to
// retry. Ties in the top-credit window break on course_name so the result
// is deterministic; the above-average and paid-more-than-5000 filters are
// strict inequalities.
const (
	topCoursesByCreditSQL = `
		SELECT course_name, credit
		FROM course
		ORDER BY credit DESC, course_name ASC
		LIMIT 5
	`

	courseCountPerStudentSQL = `
		SELECT s.s_name, s.s_surname, COUNT(e.enrollment_id) AS total_courses
		FROM student s
		LEFT JOIN enrollment e ON s.student_id = e.student_id
		GROUP BY s.student_id
		ORDER BY s.student_id
	`

	studentCountPerDepartmentSQL = `
		SELECT d.department_name, COUNT(s.student_id) AS student_count
		FROM department d
		LEFT JOIN student s ON d.department_no = s.department_no
		GROUP BY d.department_no
		ORDER BY d.department_no
	`

	totalPaymentPerStudentSQL = `
		SELECT s.s_name, s.s_surname, SUM(p.payment_amount) AS total_paid
		FROM student s
		JOIN payments p ON s.student_id = p.student_id
		GROUP BY s.student_id
		ORDER BY s.student_id
	`

	coursesAboveAverageCreditSQL = `
		SELECT course_name, credit
		FROM course
		WHERE credit > (SELECT AVG(credit) FROM course)
	`

	mostEnrolledCourseSQL = `
		SELECT c.course_name, COUNT(e.enrollment_id) AS total_enrollments
		FROM course c
		JOIN enrollment e ON c.course_id = e.course_id
		GROUP BY c.course_id
		ORDER BY total_enrollments DESC
		LIMIT 1
	`

	recentPaymentsSQL = `
		SELECT p.payment_id, s.s_name, s.s_surname, p.payment_date, p.payment_amount
		FROM payments p
		JOIN student s ON p.student_id = s.student_id
		WHERE p.payment_date >= CURRENT_DATE - INTERVAL '30 days'
	`

	averageCourseCreditPerDepartmentSQL = `
		SELECT d.department_name, AVG(c.credit) AS average_credit
		FROM department d
		JOIN course c ON d.department_no = c.department_no
		GROUP BY d.department_no
		ORDER BY d.department_no
	`

	studentsSurnameEndsWithSonSQL = `
		SELECT student_id, s_name, s_surname, s_age, s_email,
		       registration_year, grade, department_no, advisor_id
		FROM student
		WHERE LOWER(s_surname) LIKE '%son'
	`

	enrollmentCountPerCourseSQL = `
		SELECT c.course_name, COUNT(e.student_id) AS student_count
		FROM course c
		LEFT JOIN enrollment e ON c.course_id = e.course_id
		GROUP BY c.course_id
		ORDER BY c.course_id
	`

	studentsNotEnrolledSQL = `
		SELECT s_name, s_surname
		FROM student
		WHERE student_id NOT IN (SELECT student_id FROM enrollment)
	`

	highestSalaryInstructorSQL = `
		SELECT i_name, i_surname, salary
		FROM instructor
		ORDER BY salary DESC
		LIMIT 1
	`

	averageSalaryPerDepartmentSQL = `
		SELECT d.department_name, AVG(i.salary) AS average_salary
		FROM department d
		JOIN instructor i ON d.department_no = i.department_no
		GROUP BY d.department_no
		ORDER BY d.department_no
	`

	studentsPaidMoreThan5000SQL = `
		SELECT s.s_name, s.s_surname, SUM(p.payment_amount) AS total_payment
		FROM student s
		JOIN payments p ON s.student_id = p.student_id
		GROUP BY s.student_id
		HAVING SUM(p.payment_amount) > 5000
	`

	enrollmentFormattedDatesSQL = `
		SELECT s.s_name, s.s_surname,
		       TO_CHAR(e.enrollment_date, 'DD Mon YYYY') AS formatted_date
		FROM student s
		JOIN enrollment e ON s.student_id = e.student_id
	`
)

// ReportRepository runs the fixed set of read-only aggregate queries. Every
// query is parameterless and safe to retry.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

func collectReport[T any](rows pgx.Rows, queryErr error, name string) ([]T, error) {
	if queryErr != nil {
		return nil, fmt.Errorf("error running %s report: %w", name, queryErr)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("error scanning %s report: %w", name, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func collectReportRow[T any](rows pgx.Rows, queryErr error, name, resource string) (*T, error) {
	if queryErr != nil {
		return nil, fmt.Errorf("error running %s report: %w", name, queryErr)
	}
	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(resource)
		}
		return nil, fmt.Errorf("error scanning %s report: %w", name, err)
	}
	return &record, nil
}

// TopCoursesByCredit returns the five highest-credit courses. Ties are
// broken by course name so the result is deterministic.
func (r *ReportRepository) TopCoursesByCredit(ctx context.Context) ([]dto.CourseCreditRow, error) {
	rows, err := r.db.Query(ctx, topCoursesByCreditSQL)
	return collectReport[dto.CourseCreditRow](rows, err, "top courses by credit")
}

// CourseCountPerStudent counts each student's enrollments; students with no
// enrollments appear with a count of 0.
func (r *ReportRepository) CourseCountPerStudent(ctx context.Context) ([]dto.StudentCourseCountRow, error) {
	rows, err := r.db.Query(ctx, courseCountPerStudentSQL)
	return collectReport[dto.StudentCourseCountRow](rows, err, "course count per student")
}

// StudentCountPerDepartment counts students per department; empty
// departments appear with a count of 0.
func (r *ReportRepository) StudentCountPerDepartment(ctx context.Context) ([]dto.DepartmentStudentCountRow, error) {
	rows, err := r.db.Query(ctx, studentCountPerDepartmentSQL)
	return collectReport[dto.DepartmentStudentCountRow](rows, err, "student count per department")
}

// TotalPaymentPerStudent sums payments per student; students without any
// payment are excluded by the inner join.
func (r *ReportRepository) TotalPaymentPerStudent(ctx context.Context) ([]dto.StudentPaymentTotalRow, error) {
	rows, err := r.db.Query(ctx, totalPaymentPerStudentSQL)
	return collectReport[dto.StudentPaymentTotalRow](rows, err, "total payment per student")
}

// CoursesAboveAverageCredit returns courses whose credit is strictly above
// the average credit, computed in the same statement.
func (r *ReportRepository) CoursesAboveAverageCredit(ctx context.Context) ([]dto.CourseCreditRow, error) {
	rows, err := r.db.Query(ctx, coursesAboveAverageCreditSQL)
	return collectReport[dto.CourseCreditRow](rows, err, "courses above average credit")
}

// MostEnrolledCourse returns the single most-enrolled course. It signals
// not-found when no enrollments exist at all.
func (r *ReportRepository) MostEnrolledCourse(ctx context.Context) (*dto.CourseEnrollmentTotalRow, error) {
	rows, err := r.db.Query(ctx, mostEnrolledCourseSQL)
	return collectReportRow[dto.CourseEnrollmentTotalRow](rows, err, "most enrolled course", "Course")
}

// RecentPayments returns payments dated within the last 30 days relative to
// the store clock.
func (r *ReportRepository) RecentPayments(ctx context.Context) ([]dto.RecentPaymentRow, error) {
	rows, err := r.db.Query(ctx, recentPaymentsSQL)
	return collectReport[dto.RecentPaymentRow](rows, err, "recent payments")
}

// AverageCourseCreditPerDepartment averages course credit per department.
func (r *ReportRepository) AverageCourseCreditPerDepartment(ctx context.Context) ([]dto.DepartmentAvgCreditRow, error) {
	rows, err := r.db.Query(ctx, averageCourseCreditPerDepartmentSQL)
	return collectReport[dto.DepartmentAvgCreditRow](rows, err, "average course credit per department")
}

// StudentsSurnameEndsWithSon matches surnames ending in "son",
// case-insensitively.
func (r *ReportRepository) StudentsSurnameEndsWithSon(ctx context.Context) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, studentsSurnameEndsWithSonSQL)
	return collectReport[models.Student](rows, err, "students with surname ending in son")
}

// EnrollmentCountPerCourse counts enrollments per course; courses with no
// enrollments appear with a count of 0.
func (r *ReportRepository) EnrollmentCountPerCourse(ctx context.Context) ([]dto.CourseHeadcountRow, error) {
	rows, err := r.db.Query(ctx, enrollmentCountPerCourseSQL)
	return collectReport[dto.CourseHeadcountRow](rows, err, "enrollment count per course")
}

// StudentsNotEnrolled returns students absent from the enrollment table.
func (r *ReportRepository) StudentsNotEnrolled(ctx context.Context) ([]dto.StudentNameRow, error) {
	rows, err := r.db.Query(ctx, studentsNotEnrolledSQL)
	return collectReport[dto.StudentNameRow](rows, err, "students not enrolled")
}

// HighestSalaryInstructor returns the single highest-paid instructor. It
// signals not-found when no instructors exist.
func (r *ReportRepository) HighestSalaryInstructor(ctx context.Context) (*dto.InstructorSalaryRow, error) {
	rows, err := r.db.Query(ctx, highestSalaryInstructorSQL)
	return collectReportRow[dto.InstructorSalaryRow](rows, err, "highest salary instructor", "Instructor")
}

// AverageSalaryPerDepartment averages instructor salary per department.
func (r *ReportRepository) AverageSalaryPerDepartment(ctx context.Context) ([]dto.DepartmentAvgSalaryRow, error) {
	rows, err := r.db.Query(ctx, averageSalaryPerDepartmentSQL)
	return collectReport[dto.DepartmentAvgSalaryRow](rows, err, "average salary per department")
}

// StudentsPaidMoreThan5000 returns students whose summed payments strictly
// exceed 5000.
func (r *ReportRepository) StudentsPaidMoreThan5000(ctx context.Context) ([]dto.StudentPaymentSumRow, error) {
	rows, err := r.db.Query(ctx, studentsPaidMoreThan5000SQL)
	return collectReport[dto.StudentPaymentSumRow](rows, err, "students paid more than 5000")
}

// EnrollmentFormattedDates returns per-student enrollment dates formatted
// by the store as "DD Mon YYYY".
func (r *ReportRepository) EnrollmentFormattedDates(ctx context.Context) ([]dto.EnrollmentDateRow, error) {
	rows, err := r.db.Query(ctx, enrollmentFormattedDatesSQL)
	return collectReport[dto.EnrollmentDateRow](rows, err, "enrollment formatted dates")
}
