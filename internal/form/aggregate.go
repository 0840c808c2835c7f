// Package form holds the pure operations on the Form aggregate. Every
// operation takes a snapshot and returns a new snapshot; callers never see a
// partially mutated form.
package form

import (
	"fmt"
	"strings"

	"github.com/ankursharma200/QuestForm/internal/apperrors"
	"github.com/ankursharma200/QuestForm/internal/model"
)

func cloneQuestions(f model.Form) model.Form {
	f.Questions = append([]model.Question(nil), f.Questions...)
	return f
}

// AddQuestion appends a freshly-initialized question of the given type.
func AddQuestion(f model.Form, t model.QuestionType) (model.Form, error) {
	q, err := model.NewQuestion(t)
	if err != nil {
		return f, err
	}
	out := cloneQuestions(f)
	out.Questions = append(out.Questions, q)
	return out, nil
}

// UpdateQuestion replaces the mutable fields of the addressed question. The
// question keeps its id; everything else is taken from patch.
func UpdateQuestion(f model.Form, questionID string, patch model.Question) (model.Form, error) {
	i, ok := f.QuestionByID(questionID)
	if !ok {
		return f, fmt.Errorf("%w: %q", apperrors.ErrQuestionNotFound, questionID)
	}
	out := cloneQuestions(f)
	patch.ID = questionID
	out.Questions[i] = patch
	return out, nil
}

// RemoveQuestion removes the addressed question; later questions shift down.
// An unknown id is surfaced to the caller, never swallowed.
func RemoveQuestion(f model.Form, questionID string) (model.Form, error) {
	i, ok := f.QuestionByID(questionID)
	if !ok {
		return f, fmt.Errorf("%w: %q", apperrors.ErrQuestionNotFound, questionID)
	}
	out := cloneQuestions(f)
	out.Questions = append(out.Questions[:i], out.Questions[i+1:]...)
	return out, nil
}

// Reorder moves a single question to targetIndex, preserving the relative
// order of all other questions. The target index clamps to the list bounds.
func Reorder(f model.Form, questionID string, targetIndex int) (model.Form, error) {
	i, ok := f.QuestionByID(questionID)
	if !ok {
		return f, fmt.Errorf("%w: %q", apperrors.ErrQuestionNotFound, questionID)
	}
	out := cloneQuestions(f)
	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(out.Questions)-1 {
		targetIndex = len(out.Questions) - 1
	}
	if targetIndex == i {
		return out, nil
	}
	q := out.Questions[i]
	out.Questions = append(out.Questions[:i], out.Questions[i+1:]...)
	out.Questions = append(out.Questions[:targetIndex], append([]model.Question{q}, out.Questions[targetIndex:]...)...)
	return out, nil
}

// Validate runs publish validation over the whole form. It aggregates every
// failure instead of stopping at the first and returns the non-blocking
// warnings alongside. A nil error means the form may be published.
func Validate(f model.Form) ([]string, error) {
	invalid := &apperrors.FormInvalidError{}
	var warnings []string

	if strings.TrimSpace(f.Title) == "" {
		invalid.FormErrors = append(invalid.FormErrors,
			*apperrors.NewValidationError("title", "is required", f.Title))
	}

	for i, q := range f.Questions {
		qWarnings, qErrs := model.ValidateForPublish(q)
		for _, w := range qWarnings {
			warnings = append(warnings, fmt.Sprintf("questions[%d]: %s", i, w))
		}
		if len(qErrs) > 0 {
			invalid.Failures = append(invalid.Failures, apperrors.QuestionFailure{
				Index:      i,
				QuestionID: q.ID,
				Errors:     qErrs,
			})
		}
	}

	if invalid.Empty() {
		return warnings, nil
	}
	return warnings, invalid
}
