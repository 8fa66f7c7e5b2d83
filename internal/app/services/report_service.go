package services

import (
	"context"

	"github.com/oguzhan/uniregistry/internal/app/models"
	"github.com/oguzhan/uniregistry/internal/app/models/dto"
)

// ReportStore abstracts the report repository for tests.
type ReportStore interface {
	TopCoursesByCredit(ctx context.Context) ([]dto.CourseCreditRow, error)
	CourseCountPerStudent(ctx context.Context) ([]dto.StudentCourseCountRow, error)
	StudentCountPerDepartment(ctx context.Context) ([]dto.DepartmentStudentCountRow, error)
	TotalPaymentPerStudent(ctx context.Context) ([]dto.StudentPaymentTotalRow, error)
	CoursesAboveAverageCredit(ctx context.Context) ([]dto.CourseCreditRow, error)
	MostEnrolledCourse(ctx context.Context) (*dto.CourseEnrollmentTotalRow, error)
	RecentPayments(ctx context.Context) ([]dto.RecentPaymentRow, error)
	AverageCourseCreditPerDepartment(ctx context.Context) ([]dto.DepartmentAvgCreditRow, error)
	StudentsSurnameEndsWithSon(ctx context.Context) ([]models.Student, error)
	EnrollmentCountPerCourse(ctx context.Context) ([]dto.CourseHeadcountRow, error)
	StudentsNotEnrolled(ctx context.Context) ([]dto.StudentNameRow, error)
	HighestSalaryInstructor(ctx context.Context) (*dto.InstructorSalaryRow, error)
	AverageSalaryPerDepartment(ctx context.Context) ([]dto.DepartmentAvgSalaryRow, error)
	StudentsPaidMoreThan5000(ctx context.Context) ([]dto.StudentPaymentSumRow, error)
	EnrollmentFormattedDates(ctx context.Context) ([]dto.EnrollmentDateRow, error)
}

// ReportService runs the canned analytical queries. All operations are pure
// reads; the store decides isolation.
type ReportService struct {
	store ReportStore
}

// NewReportService creates a new report service
func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

func (s *ReportService) TopCoursesByCredit(ctx context.Context) ([]dto.CourseCreditRow, error) {
	return s.store.TopCoursesByCredit(ctx)
}

func (s *ReportService) CourseCountPerStudent(ctx context.Context) ([]dto.StudentCourseCountRow, error) {
	return s.store.CourseCountPerStudent(ctx)
}

func (s *ReportService) StudentCountPerDepartment(ctx context.Context) ([]dto.DepartmentStudentCountRow, error) {
	return s.store.StudentCountPerDepartment(ctx)
}

func (s *ReportService) TotalPaymentPerStudent(ctx context.Context) ([]dto.StudentPaymentTotalRow, error) {
	return s.store.TotalPaymentPerStudent(ctx)
}

func (s *ReportService) CoursesAboveAverageCredit(ctx context.Context) ([]dto.CourseCreditRow, error) {
	return s.store.CoursesAboveAverageCredit(ctx)
}

// MostEnrolledCourse returns a single row; callers receive a not-found
// error when no enrollments exist.
func (s *ReportService) MostEnrolledCourse(ctx context.Context) (*dto.CourseEnrollmentTotalRow, error) {
	return s.store.MostEnrolledCourse(ctx)
}

func (s *ReportService) RecentPayments(ctx context.Context) ([]dto.RecentPaymentRow, error) {
	return s.store.RecentPayments(ctx)
}

func (s *ReportService) AverageCourseCreditPerDepartment(ctx context.Context) ([]dto.DepartmentAvgCreditRow, error) {
	return s.store.AverageCourseCreditPerDepartment(ctx)
}

func (s *ReportService) StudentsSurnameEndsWithSon(ctx context.Context) ([]models.Student, error) {
	return s.store.StudentsSurnameEndsWithSon(ctx)
}

func (s *ReportService) EnrollmentCountPerCourse(ctx context.Context) ([]dto.CourseHeadcountRow, error) {
	return s.store.EnrollmentCountPerCourse(ctx)
}

func (s *ReportService) StudentsNotEnrolled(ctx context.Context) ([]dto.StudentNameRow, error) {
	return s.store.StudentsNotEnrolled(ctx)
}

// HighestSalaryInstructor returns a single row; callers receive a not-found
// error when no instructors exist.
func (s *ReportService) HighestSalaryInstructor(ctx context.Context) (*dto.InstructorSalaryRow, error) {
	return s.store.HighestSalaryInstructor(ctx)
}

func (s *ReportService) AverageSalaryPerDepartment(ctx context.Context) ([]dto.DepartmentAvgSalaryRow, error) {
	return s.store.AverageSalaryPerDepartment(ctx)
}

func (s *ReportService) StudentsPaidMoreThan5000(ctx context.Context) ([]dto.StudentPaymentSumRow, error) {
	return s.store.StudentsPaidMoreThan5000(ctx)
}

func (s *ReportService) EnrollmentFormattedDates(ctx context.Context) ([]dto.EnrollmentDateRow, error) {
	return s.store.EnrollmentFormattedDates(ctx)
}
