// Package answer converts a filler's in-progress input into the canonical
// per-question-type encoding the Response aggregate persists. Encoding is
// lenient on submit: partial answers are accepted and normalized rather than
// rejected.
package answer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ankursharma200/QuestForm/internal/apperrors"
	"github.com/ankursharma200/QuestForm/internal/engine"
	"github.com/ankursharma200/QuestForm/internal/model"
)

var jsonNull = []byte("null")

// Encode normalizes a raw submitted answer into the canonical value for the
// question's type. A missing or null answer yields the variant's empty
// canonical value; a payload of the wrong shape yields a ValidationError.
func Encode(q model.Question, raw json.RawMessage) (interface{}, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return Empty(q)
	}

	switch q.Type {
	case model.QuestionTypeCategorize:
		var mapping model.CategorizeAnswer
		if err := json.Unmarshal(raw, &mapping); err != nil {
			return nil, apperrors.NewValidationError(q.ID, "categorize answer must be an object of item text to category", string(raw))
		}
		// Rehydrating through the engine drops entries that reference
		// undeclared categories or unknown items.
		a, err := engine.RestoreAssignment(q, mapping)
		if err != nil {
			return nil, err
		}
		return a.CanonicalAnswer(), nil

	case model.QuestionTypeCloze:
		var slots model.SlotAnswer
		if err := json.Unmarshal(raw, &slots); err != nil {
			return nil, apperrors.NewValidationError(q.ID, "cloze answer must be an array of strings, one per blank", string(raw))
		}
		return fitSlots(slots, model.BlankCount(q.Sentence)), nil

	case model.QuestionTypeComprehension:
		var slots model.SlotAnswer
		if err := json.Unmarshal(raw, &slots); err != nil {
			return nil, apperrors.NewValidationError(q.ID, "comprehension answer must be an array of strings, one per MCQ", string(raw))
		}
		return fitSlots(slots, len(q.MCQs)), nil
	}

	return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidQuestionType, q.Type)
}

// Empty returns the canonical value of an unanswered question.
func Empty(q model.Question) (interface{}, error) {
	switch q.Type {
	case model.QuestionTypeCategorize:
		return model.CategorizeAnswer{}, nil
	case model.QuestionTypeCloze:
		return make(model.SlotAnswer, model.BlankCount(q.Sentence)), nil
	case model.QuestionTypeComprehension:
		return make(model.SlotAnswer, len(q.MCQs)), nil
	}
	return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidQuestionType, q.Type)
}

// fitSlots pads or truncates to exactly n slots, left-to-right.
func fitSlots(got model.SlotAnswer, n int) model.SlotAnswer {
	out := make(model.SlotAnswer, n)
	copy(out, got)
	return out
}
