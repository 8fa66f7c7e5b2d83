package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("Student")

	if err.Error() != "Student not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false")
	}
}

func TestNotFoundError_Wrapped(t *testing.T) {
	err := fmt.Errorf("error retrieving student: %w", NewNotFound("Student"))

	if !errors.Is(err, ErrNotFound) {
		t.Error("wrapped error does not match ErrNotFound")
	}
	if got := ResourceName(err, "Resource"); got != "Student" {
		t.Errorf("ResourceName = %q, want Student", got)
	}
}

func TestResourceName_Fallback(t *testing.T) {
	if got := ResourceName(errors.New("boom"), "Payment"); got != "Payment" {
		t.Errorf("ResourceName = %q, want fallback Payment", got)
	}
}
