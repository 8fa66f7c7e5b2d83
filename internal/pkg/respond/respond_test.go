package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/oguzhan/uniregistry/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", w.Body.String(), err)
	}
	return out
}

func TestSuccess(t *testing.T) {
	w := record(func(c *gin.Context) {
		Success(c, []string{"a"}, "Things retrieved successfully")
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode(t, w)
	if body["message"] != "Things retrieved successfully" {
		t.Errorf("message = %q", body["message"])
	}
	if _, ok := body["data"]; !ok {
		t.Error("data key missing")
	}
}

func TestHandleError_NotFound(t *testing.T) {
	w := record(func(c *gin.Context) {
		HandleError(c, apperrors.NewNotFound("Course"), "Resource", "Failed to retrieve course")
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	body := decode(t, w)
	if body["error"] != "Course not found" {
		t.Errorf("error = %q", body["error"])
	}
	if _, ok := body["details"]; ok {
		t.Error("details should be omitted on not-found")
	}
}

func TestHandleError_StoreFailure(t *testing.T) {
	w := record(func(c *gin.Context) {
		HandleError(c, errors.New("connection refused"), "Course", "Failed to retrieve course")
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := decode(t, w)
	if body["error"] != "Failed to retrieve course" {
		t.Errorf("error = %q", body["error"])
	}
	if body["details"] != "connection refused" {
		t.Errorf("details = %q", body["details"])
	}
}

func TestFailureBody(t *testing.T) {
	status, data := FailureBody(apperrors.NewNotFound("Payment"), "Resource", "Failed to delete payment")
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	envelope, ok := data.(ErrorEnvelope)
	if !ok {
		t.Fatalf("data is %T", data)
	}
	if envelope.Error != "Payment not found" {
		t.Errorf("error = %q", envelope.Error)
	}

	status, data = FailureBody(errors.New("boom"), "Payment", "Failed to delete payment")
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
	envelope = data.(ErrorEnvelope)
	if envelope.Error != "Failed to delete payment" || envelope.Details != "boom" {
		t.Errorf("envelope = %+v", envelope)
	}
}
