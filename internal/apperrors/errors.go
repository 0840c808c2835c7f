package apperrors

import (
	"errors"
	"fmt"
)

var (
	// Form errors
	ErrFormNotFound = errors.New("form not found")

	// Question errors
	ErrQuestionNotFound    = errors.New("question not found")
	ErrInvalidQuestionType = errors.New("invalid question type")

	// Assignment engine errors
	ErrItemNotFound  = errors.New("item not found")
	ErrUnknownBucket = errors.New("unknown bucket")
)

// QuestionFailure collects the validation errors for one question of a form.
type QuestionFailure struct {
	Index      int              `json:"index"`
	QuestionID string           `json:"questionId,omitempty"`
	Errors     ValidationErrors `json:"errors"`
}

// FormInvalidError is returned by publish validation. It aggregates every
// per-question failure rather than stopping at the first one.
type FormInvalidError struct {
	FormErrors ValidationErrors  `json:"formErrors,omitempty"`
	Failures   []QuestionFailure `json:"failures,omitempty"`
}

func (e *FormInvalidError) Error() string {
	return fmt.Sprintf("form is not valid for publishing: %d form errors, %d question failures",
		len(e.FormErrors), len(e.Failures))
}

// Empty reports whether the error carries no actual failures.
func (e *FormInvalidError) Empty() bool {
	return len(e.FormErrors) == 0 && len(e.Failures) == 0
}
