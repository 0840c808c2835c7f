package model

import (
	"fmt"
	"strings"

	"github.com/ankursharma200/QuestForm/internal/apperrors"
)

// QuestionType defines the kind of question
type QuestionType string

const (
	QuestionTypeCategorize    QuestionType = "Categorize"    // Drag items into category buckets
	QuestionTypeCloze         QuestionType = "Cloze"         // Fill-in-the-blank sentence
	QuestionTypeComprehension QuestionType = "Comprehension" // Passage with MCQs
)

// Valid reports whether t is one of the three known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeCategorize, QuestionTypeCloze, QuestionTypeComprehension:
		return true
	}
	return false
}

// BlankMarker is the token authors type into a Cloze sentence for each blank.
const BlankMarker = "__"

// CategorizeItem is one draggable item of a Categorize question. Category is
// the author's intended assignment; it may be empty while the question is
// being edited.
type CategorizeItem struct {
	ID       string `json:"id,omitempty" bson:"id,omitempty"`
	Text     string `json:"text" bson:"text"`
	Category string `json:"category" bson:"category"`
}

// MCQ is one multiple-choice question attached to a Comprehension passage.
type MCQ struct {
	ID            string   `json:"id,omitempty" bson:"id,omitempty"`
	Prompt        string   `json:"question" bson:"question"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer string   `json:"correctAnswer,omitempty" bson:"correctAnswer,omitempty"`
}

// Question is a question template in a form. Type selects which of the
// variant field groups is meaningful; the others stay empty. ID is assigned
// on first persistence and is immutable afterwards.
type Question struct {
	ID       string       `json:"questionId,omitempty" bson:"questionId,omitempty"`
	Type     QuestionType `json:"questionType" bson:"questionType"`
	Text     string       `json:"questionText" bson:"questionText"`
	ImageURL string       `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`

	// Categorize
	Categories []string         `json:"categories,omitempty" bson:"categories,omitempty"`
	Items      []CategorizeItem `json:"items,omitempty" bson:"items,omitempty"`

	// Cloze
	Sentence string   `json:"sentence,omitempty" bson:"sentence,omitempty"`
	Options  []string `json:"options,omitempty" bson:"options,omitempty"`

	// Comprehension
	Passage string `json:"passage,omitempty" bson:"passage,omitempty"`
	MCQs    []MCQ  `json:"mcqs,omitempty" bson:"mcqs,omitempty"`
}

// NewQuestion returns a freshly-initialized question of the given type with
// empty but well-formed variant fields. A Categorize question starts with a
// single blank category and no items.
func NewQuestion(t QuestionType) (Question, error) {
	q := Question{Type: t}
	switch t {
	case QuestionTypeCategorize:
		q.Categories = []string{""}
		q.Items = []CategorizeItem{}
	case QuestionTypeCloze:
		q.Options = []string{}
	case QuestionTypeComprehension:
		q.MCQs = []MCQ{}
	default:
		return Question{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidQuestionType, t)
	}
	return q, nil
}

// BlankCount returns the number of answer slots a Cloze sentence defines.
func BlankCount(sentence string) int {
	return strings.Count(sentence, BlankMarker)
}

// ValidateForPublish checks a question for structural completeness. It
// returns non-blocking warnings alongside hard errors; a question with only
// warnings is still publishable.
func ValidateForPublish(q Question) ([]string, apperrors.ValidationErrors) {
	var warnings []string
	var errs apperrors.ValidationErrors

	if strings.TrimSpace(q.Text) == "" {
		errs = append(errs, *apperrors.NewValidationError("questionText", "is required", q.Text))
	}

	switch q.Type {
	case QuestionTypeCategorize:
		if len(q.Categories) == 0 {
			errs = append(errs, *apperrors.NewValidationError("categories", "must contain at least one category", nil))
		}
		declared := make(map[string]bool, len(q.Categories))
		for i, cat := range q.Categories {
			if strings.TrimSpace(cat) == "" {
				errs = append(errs, *apperrors.NewValidationError(
					fmt.Sprintf("categories[%d]", i), "must not be empty", cat))
				continue
			}
			declared[cat] = true
		}
		for i, item := range q.Items {
			if item.Category != "" && !declared[item.Category] {
				warnings = append(warnings, fmt.Sprintf(
					"items[%d] (%q) is assigned to undeclared category %q", i, item.Text, item.Category))
			}
		}
	case QuestionTypeCloze:
		if q.Sentence == "" {
			warnings = append(warnings, "sentence is empty")
		} else if BlankCount(q.Sentence) == 0 {
			warnings = append(warnings, "sentence contains no blank markers; the question has no interactive slot")
		}
	case QuestionTypeComprehension:
		for i, mcq := range q.MCQs {
			if strings.TrimSpace(mcq.Prompt) == "" {
				errs = append(errs, *apperrors.NewValidationError(
					fmt.Sprintf("mcqs[%d].question", i), "is required", mcq.Prompt))
			}
			if len(mcq.Options) < 2 {
				errs = append(errs, *apperrors.NewValidationError(
					fmt.Sprintf("mcqs[%d].options", i), "must contain at least 2 options", len(mcq.Options)))
			}
		}
	default:
		errs = append(errs, *apperrors.NewValidationError("questionType", "must be Categorize, Cloze or Comprehension", string(q.Type)))
	}

	return warnings, errs
}
