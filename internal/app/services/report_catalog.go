package services

import "context"

// ReportDefinition names one canned query for the transports: Key is the
// short identifier used by the desktop bridge ("q1".."q15"), Slug the HTTP
// path segment, and the messages are the fixed texts carried in response
// envelopes.
type ReportDefinition struct {
	Key            string
	Slug           string
	Message        string
	FailureMessage string
	Run            func(ctx context.Context, s *ReportService) (interface{}, error)
}

// ReportCatalog lists every report in display order. Both transport
// adapters are generated from this table, so the two surfaces cannot
// drift apart.
func ReportCatalog() []ReportDefinition {
	return []ReportDefinition{
		{
			Key:            "q1",
			Slug:           "top-courses-by-credit",
			Message:        "Top 5 highest credit courses retrieved",
			FailureMessage: "Failed to get top 5 highest credit courses",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.TopCoursesByCredit(ctx)
			},
		},
		{
			Key:            "q2",
			Slug:           "course-count-per-student",
			Message:        "Course count per student retrieved",
			FailureMessage: "Failed to get course count per student",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.CourseCountPerStudent(ctx)
			},
		},
		{
			Key:            "q3",
			Slug:           "student-count-per-department",
			Message:        "Student count per department retrieved",
			FailureMessage: "Failed to get student count per department",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.StudentCountPerDepartment(ctx)
			},
		},
		{
			Key:            "q4",
			Slug:           "total-payment-per-student",
			Message:        "Total payments per student retrieved",
			FailureMessage: "Failed to get total payment per student",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.TotalPaymentPerStudent(ctx)
			},
		},
		{
			Key:            "q5",
			Slug:           "courses-above-average-credit",
			Message:        "Courses above average credit retrieved",
			FailureMessage: "Failed to get courses above average credit",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.CoursesAboveAverageCredit(ctx)
			},
		},
		{
			Key:            "q6",
			Slug:           "most-enrolled-course",
			Message:        "Most enrolled course retrieved",
			FailureMessage: "Failed to get most enrolled course",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.MostEnrolledCourse(ctx)
			},
		},
		{
			Key:            "q7",
			Slug:           "recent-payments",
			Message:        "Recent payments (last 30 days) retrieved",
			FailureMessage: "Failed to get recent payments",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.RecentPayments(ctx)
			},
		},
		{
			Key:            "q8",
			Slug:           "average-course-credit-per-department",
			Message:        "Average course credit per department retrieved",
			FailureMessage: "Failed to get average course credit per department",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.AverageCourseCreditPerDepartment(ctx)
			},
		},
		{
			Key:            "q9",
			Slug:           "students-surname-ends-with-son",
			Message:        `Students with surname ending with "son" retrieved`,
			FailureMessage: "Failed to get students by surname pattern",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.StudentsSurnameEndsWithSon(ctx)
			},
		},
		{
			Key:            "q10",
			Slug:           "enrollment-count-per-course",
			Message:        "Enrollment count per course retrieved",
			FailureMessage: "Failed to get enrollment count per course",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.EnrollmentCountPerCourse(ctx)
			},
		},
		{
			Key:            "q11",
			Slug:           "students-not-enrolled",
			Message:        "Students not enrolled in any course retrieved",
			FailureMessage: "Failed to get students not enrolled",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.StudentsNotEnrolled(ctx)
			},
		},
		{
			Key:            "q12",
			Slug:           "highest-salary-instructor",
			Message:        "Highest salary instructor retrieved",
			FailureMessage: "Failed to get highest salary instructor",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.HighestSalaryInstructor(ctx)
			},
		},
		{
			Key:            "q13",
			Slug:           "average-salary-per-department",
			Message:        "Average instructor salary per department retrieved",
			FailureMessage: "Failed to get average salary per department",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.AverageSalaryPerDepartment(ctx)
			},
		},
		{
			Key:            "q14",
			Slug:           "students-paid-more-than-5000",
			Message:        "Students who paid more than 5000 retrieved",
			FailureMessage: "Failed to get students who paid more than 5000",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.StudentsPaidMoreThan5000(ctx)
			},
		},
		{
			Key:            "q15",
			Slug:           "enrollment-formatted-dates",
			Message:        "Enrollment formatted dates retrieved",
			FailureMessage: "Failed to get enrollment formatted dates",
			Run: func(ctx context.Context, s *ReportService) (interface{}, error) {
				return s.EnrollmentFormattedDates(ctx)
			},
		},
	}
}
