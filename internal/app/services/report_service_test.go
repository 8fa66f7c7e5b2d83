package services

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/oguzhan/uniregistry/internal/app/models"
	"github.com/oguzhan/uniregistry/internal/app/models/dto"
	"github.com/oguzhan/uniregistry/internal/pkg/apperrors"
)

// mockReportStore returns canned rows; single-row reports honor notFound.
type mockReportStore struct {
	notFound bool
	called   map[string]int
}

func newMockReportStore() *mockReportStore {
	return &mockReportStore{called: make(map[string]int)}
}

func (m *mockReportStore) hit(name string) { m.called[name]++ }

func (m *mockReportStore) TopCoursesByCredit(_ context.Context) ([]dto.CourseCreditRow, error) {
	m.hit("TopCoursesByCredit")
	return []dto.CourseCreditRow{{CourseName: "Algorithms", Credit: 7}}, nil
}

func (m *mockReportStore) CourseCountPerStudent(_ context.Context) ([]dto.StudentCourseCountRow, error) {
	m.hit("CourseCountPerStudent")
	return []dto.StudentCourseCountRow{}, nil
}

func (m *mockReportStore) StudentCountPerDepartment(_ context.Context) ([]dto.DepartmentStudentCountRow, error) {
	m.hit("StudentCountPerDepartment")
	return []dto.DepartmentStudentCountRow{}, nil
}

func (m *mockReportStore) TotalPaymentPerStudent(_ context.Context) ([]dto.StudentPaymentTotalRow, error) {
	m.hit("TotalPaymentPerStudent")
	return []dto.StudentPaymentTotalRow{}, nil
}

func (m *mockReportStore) CoursesAboveAverageCredit(_ context.Context) ([]dto.CourseCreditRow, error) {
	m.hit("CoursesAboveAverageCredit")
	return []dto.CourseCreditRow{}, nil
}

func (m *mockReportStore) MostEnrolledCourse(_ context.Context) (*dto.CourseEnrollmentTotalRow, error) {
	m.hit("MostEnrolledCourse")
	if m.notFound {
		return nil, apperrors.NewNotFound("Course")
	}
	return &dto.CourseEnrollmentTotalRow{CourseName: "Algorithms", TotalEnrollments: 12}, nil
}

func (m *mockReportStore) RecentPayments(_ context.Context) ([]dto.RecentPaymentRow, error) {
	m.hit("RecentPayments")
	return []dto.RecentPaymentRow{}, nil
}

func (m *mockReportStore) AverageCourseCreditPerDepartment(_ context.Context) ([]dto.DepartmentAvgCreditRow, error) {
	m.hit("AverageCourseCreditPerDepartment")
	return []dto.DepartmentAvgCreditRow{}, nil
}

func (m *mockReportStore) StudentsSurnameEndsWithSon(_ context.Context) ([]models.Student, error) {
	m.hit("StudentsSurnameEndsWithSon")
	return []models.Student{}, nil
}

func (m *mockReportStore) EnrollmentCountPerCourse(_ context.Context) ([]dto.CourseHeadcountRow, error) {
	m.hit("EnrollmentCountPerCourse")
	return []dto.CourseHeadcountRow{}, nil
}

func (m *mockReportStore) StudentsNotEnrolled(_ context.Context) ([]dto.StudentNameRow, error) {
	m.hit("StudentsNotEnrolled")
	return []dto.StudentNameRow{}, nil
}

func (m *mockReportStore) HighestSalaryInstructor(_ context.Context) (*dto.InstructorSalaryRow, error) {
	m.hit("HighestSalaryInstructor")
	if m.notFound {
		return nil, apperrors.NewNotFound("Instructor")
	}
	return &dto.InstructorSalaryRow{Name: "Ayse", Surname: "Demir", Salary: 9200}, nil
}

func (m *mockReportStore) AverageSalaryPerDepartment(_ context.Context) ([]dto.DepartmentAvgSalaryRow, error) {
	m.hit("AverageSalaryPerDepartment")
	return []dto.DepartmentAvgSalaryRow{}, nil
}

func (m *mockReportStore) StudentsPaidMoreThan5000(_ context.Context) ([]dto.StudentPaymentSumRow, error) {
	m.hit("StudentsPaidMoreThan5000")
	return []dto.StudentPaymentSumRow{}, nil
}

func (m *mockReportStore) EnrollmentFormattedDates(_ context.Context) ([]dto.EnrollmentDateRow, error) {
	m.hit("EnrollmentFormattedDates")
	return []dto.EnrollmentDateRow{}, nil
}

func TestReportService_SingleRowNotFound(t *testing.T) {
	store := newMockReportStore()
	store.notFound = true
	svc := NewReportService(store)
	ctx := context.Background()

	if _, err := svc.MostEnrolledCourse(ctx); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("MostEnrolledCourse: got %v, want not-found", err)
	}
	if _, err := svc.HighestSalaryInstructor(ctx); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("HighestSalaryInstructor: got %v, want not-found", err)
	}
}

func TestReportCatalog_Complete(t *testing.T) {
	catalog := ReportCatalog()
	if len(catalog) != 15 {
		t.Fatalf("catalog has %d entries, want 15", len(catalog))
	}

	keys := make(map[string]bool)
	slugs := make(map[string]bool)
	for _, def := range catalog {
		if def.Key == "" || def.Slug == "" || def.Message == "" || def.FailureMessage == "" || def.Run == nil {
			t.Errorf("catalog entry %q is incomplete", def.Key)
		}
		if keys[def.Key] {
			t.Errorf("duplicate key %q", def.Key)
		}
		if slugs[def.Slug] {
			t.Errorf("duplicate slug %q", def.Slug)
		}
		keys[def.Key] = true
		slugs[def.Slug] = true
	}

	for i := 1; i <= 15; i++ {
		key := "q" + strconv.Itoa(i)
		if !keys[key] {
			t.Errorf("catalog missing key %q", key)
		}
	}
}

func TestReportCatalog_RunsEveryQuery(t *testing.T) {
	store := newMockReportStore()
	svc := NewReportService(store)
	ctx := context.Background()

	for _, def := range ReportCatalog() {
		if _, err := def.Run(ctx, svc); err != nil {
			t.Errorf("report %s failed: %v", def.Key, err)
		}
	}

	if len(store.called) != 15 {
		t.Errorf("catalog exercised %d store methods, want 15", len(store.called))
	}
	for name, count := range store.called {
		if count != 1 {
			t.Errorf("store method %s called %d times, want 1", name, count)
		}
	}
}
