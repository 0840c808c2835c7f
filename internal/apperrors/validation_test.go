package apperrors

import (
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("title", "is required", "")

	if err.Field != "title" {
		t.Errorf("Expected field to be 'title', got '%s'", err.Field)
	}
	if err.Message != "is required" {
		t.Errorf("Expected message to be 'is required', got '%s'", err.Message)
	}

	expected := "validation error on field 'title': is required"
	if err.Error() != expected {
		t.Errorf("Expected error message to be '%s', got '%s'", expected, err.Error())
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Error() != "validation failed" {
		t.Errorf("Expected 'validation failed' for empty errors, got '%s'", errs.Error())
	}

	errs = append(errs, *NewValidationError("field1", "message1", nil))
	expected := "validation failed: field1 message1"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for single error, got '%s'", expected, errs.Error())
	}

	errs = append(errs, *NewValidationError("field2", "message2", nil))
	expected = "validation failed: 2 field errors"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for multiple errors, got '%s'", expected, errs.Error())
	}
}

func TestFormInvalidError(t *testing.T) {
	e := &FormInvalidError{}
	if !e.Empty() {
		t.Error("Expected a fresh FormInvalidError to be empty")
	}

	e.Failures = append(e.Failures, QuestionFailure{
		Index:      1,
		QuestionID: "q2",
		Errors:     ValidationErrors{*NewValidationError("questionText", "is required", "")},
	})
	if e.Empty() {
		t.Error("Expected FormInvalidError with failures to be non-empty")
	}

	expected := "form is not valid for publishing: 0 form errors, 1 question failures"
	if e.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, e.Error())
	}
}
