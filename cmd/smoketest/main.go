// Command smoketest exercises a running API instance from the console. It
// walks each entity through a create/get/update/delete round trip against
// fresh identifiers, then fetches every report. Suites are confirmed
// interactively unless -yes is given; the exit code is 0 only when every
// executed check passed.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type runner struct {
	baseURL string
	client  *http.Client
	reader  *bufio.Reader
	yes     bool

	passed int
	failed int
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "base URL of a running API instance")
	yes := flag.Bool("yes", false, "run all suites without asking")
	flag.Parse()

	r := &runner{
		baseURL: strings.TrimRight(*baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		reader:  bufio.NewReader(os.Stdin),
		yes:     *yes,
	}

	if !r.check("GET", "/api/health", nil, http.StatusOK) {
		fmt.Fprintf(os.Stderr, "API is not reachable at %s\n", r.baseURL)
		os.Exit(1)
	}

	id := time.Now().Unix() % 1_000_000

	r.suite("Departments", func() {
		r.crud("departments",
			map[string]interface{}{"department_no": id, "department_name": "Smoke Test Dept"},
			map[string]interface{}{"department_no": id, "department_name": "Smoke Test Dept Renamed"},
			id)
	})

	r.suite("Instructors", func() {
		r.crud("instructors",
			map[string]interface{}{"instructor_id": id, "i_name": "Test", "i_surname": "Instructor", "salary": 5000, "i_age": 40, "i_mail": "t@u.edu"},
			map[string]interface{}{"instructor_id": id, "i_name": "Test", "i_surname": "Instructor", "salary": 5500, "i_age": 41, "i_mail": "t@u.edu"},
			id)
	})

	r.suite("Students", func() {
		r.crud("students",
			map[string]interface{}{"student_id": id, "s_name": "Test", "s_surname": "Student", "s_age": 20, "s_email": "s@u.edu", "registration_year": 2024, "grade": 3.0},
			map[string]interface{}{"student_id": id, "s_name": "Test", "s_surname": "Student", "s_age": 21, "s_email": "s@u.edu", "registration_year": 2024, "grade": 3.2},
			id)
	})

	r.suite("Courses", func() {
		r.crud("courses",
			map[string]interface{}{"course_id": id, "course_name": "Smoke Test Course", "credit": 4, "semester": "Fall"},
			map[string]interface{}{"course_id": id, "course_name": "Smoke Test Course", "credit": 5, "semester": "Spring"},
			id)
	})

	r.suite("Enrollments", func() {
		// Needs a student and a course; create throwaway parents first.
		r.check("POST", "/api/students",
			map[string]interface{}{"student_id": id, "s_name": "Parent", "s_surname": "Row", "s_age": 20, "s_email": "p@u.edu", "registration_year": 2024, "grade": 3.0},
			http.StatusCreated)
		r.check("POST", "/api/courses",
			map[string]interface{}{"course_id": id, "course_name": "Parent Course", "credit": 3, "semester": "Fall"},
			http.StatusCreated)

		r.crud("enrollments",
			map[string]interface{}{"enrollment_id": id, "student_id": id, "course_id": id, "grade": "A", "enrollment_date": time.Now().Format(time.RFC3339), "semester": "Fall"},
			map[string]interface{}{"enrollment_id": id, "student_id": id, "course_id": id, "grade": "B", "enrollment_date": time.Now().Format(time.RFC3339), "semester": "Fall"},
			id)

		r.check("DELETE", fmt.Sprintf("/api/courses/%d", id), nil, http.StatusOK)
		r.check("DELETE", fmt.Sprintf("/api/students/%d", id), nil, http.StatusOK)
	})

	r.suite("Payments", func() {
		r.check("POST", "/api/students",
			map[string]interface{}{"student_id": id, "s_name": "Payer", "s_surname": "Row", "s_age": 20, "s_email": "pay@u.edu", "registration_year": 2024, "grade": 3.0},
			http.StatusCreated)

		body := map[string]interface{}{"student_id": id, "payment_status": "completed", "payment_method": "credit_card", "payment_date": time.Now().Format(time.RFC3339), "payment_amount": 100.5}
		created, ok := r.request("POST", "/api/payments", body, http.StatusCreated)
		if ok {
			// payment_id is generated; read it back for the rest of the trip.
			if pid, found := extractID(created, "payment_id"); found {
				r.check("GET", fmt.Sprintf("/api/payments/%d", pid), nil, http.StatusOK)
				body["payment_amount"] = 200.0
				r.check("PUT", fmt.Sprintf("/api/payments/%d", pid), body, http.StatusOK)
				r.check("DELETE", fmt.Sprintf("/api/payments/%d", pid), nil, http.StatusOK)
				r.check("GET", fmt.Sprintf("/api/payments/%d", pid), nil, http.StatusNotFound)
			} else {
				r.fail("POST /api/payments", "response carries no payment_id")
			}
		}

		r.check("DELETE", fmt.Sprintf("/api/students/%d", id), nil, http.StatusOK)
	})

	r.suite("Reports", func() {
		slugs := []string{
			"top-courses-by-credit",
			"course-count-per-student",
			"student-count-per-department",
			"total-payment-per-student",
			"courses-above-average-credit",
			"recent-payments",
			"average-course-credit-per-department",
			"students-surname-ends-with-son",
			"enrollment-count-per-course",
			"students-not-enrolled",
			"average-salary-per-department",
			"students-paid-more-than-5000",
			"enrollment-formatted-dates",
		}
		for _, slug := range slugs {
			r.check("GET", "/api/reports/"+slug, nil, http.StatusOK)
		}
		// Single-row reports 404 on an empty database, so accept both.
		r.checkAny("GET", "/api/reports/most-enrolled-course", http.StatusOK, http.StatusNotFound)
		r.checkAny("GET", "/api/reports/highest-salary-instructor", http.StatusOK, http.StatusNotFound)
	})

	fmt.Printf("\n%d passed, %d failed\n", r.passed, r.failed)
	if r.failed > 0 {
		os.Exit(1)
	}
}

// suite asks for confirmation, then runs the checks.
func (r *runner) suite(name string, fn func()) {
	if !r.yes {
		fmt.Printf("Run %s suite? [Y/n] ", name)
		line, err := r.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			fmt.Fprintf(os.Stderr, "stdin read error: %v\n", err)
			os.Exit(1)
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer == "n" || answer == "no" {
			fmt.Printf("-- %s skipped\n", name)
			return
		}
	}
	fmt.Printf("== %s\n", name)
	fn()
}

// crud runs the create/get/update/delete round trip for one entity.
func (r *runner) crud(path string, createBody, updateBody map[string]interface{}, id int64) {
	base := "/api/" + path
	item := fmt.Sprintf("%s/%d", base, id)

	r.check("GET", base, nil, http.StatusOK)
	r.check("POST", base, createBody, http.StatusCreated)
	r.check("GET", item, nil, http.StatusOK)
	r.check("PUT", item, updateBody, http.StatusOK)
	r.check("DELETE", item, nil, http.StatusOK)
	r.check("GET", item, nil, http.StatusNotFound)
	r.check("GET", base+"/not-a-number", nil, http.StatusBadRequest)
}

// check performs one request and records pass/fail against the expected
// status.
func (r *runner) check(method, path string, body interface{}, want int) bool {
	_, ok := r.request(method, path, body, want)
	return ok
}

// checkAny accepts any of the given statuses.
func (r *runner) checkAny(method, path string, statuses ...int) bool {
	resp, err := r.do(method, path, nil)
	if err != nil {
		r.fail(method+" "+path, err.Error())
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	for _, want := range statuses {
		if resp.StatusCode == want {
			r.pass(method + " " + path)
			return true
		}
	}
	r.fail(method+" "+path, fmt.Sprintf("got %d, want one of %v", resp.StatusCode, statuses))
	return false
}

// request performs one request and returns the decoded body on success.
func (r *runner) request(method, path string, body interface{}, want int) (map[string]interface{}, bool) {
	resp, err := r.do(method, path, body)
	if err != nil {
		r.fail(method+" "+path, err.Error())
		return nil, false
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != want {
		r.fail(method+" "+path, fmt.Sprintf("got %d, want %d: %s", resp.StatusCode, want, strings.TrimSpace(string(raw))))
		return nil, false
	}

	var decoded map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			r.fail(method+" "+path, "invalid JSON response: "+err.Error())
			return nil, false
		}
	}
	r.pass(method + " " + path)
	return decoded, true
}

func (r *runner) do(method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, r.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return r.client.Do(req)
}

func (r *runner) pass(label string) {
	r.passed++
	fmt.Printf("  ok   %s\n", label)
}

func (r *runner) fail(label, detail string) {
	r.failed++
	fmt.Printf("  FAIL %s: %s\n", label, detail)
}

// extractID digs the generated identifier out of a success envelope.
func extractID(envelope map[string]interface{}, field string) (int64, bool) {
	data, ok := envelope["data"].(map[string]interface{})
	if !ok {
		return 0, false
	}
	value, ok := data[field].(float64)
	if !ok {
		return 0, false
	}
	return int64(value), true
}
