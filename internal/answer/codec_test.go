package answer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankursharma200/QuestForm/internal/apperrors"
	"github.com/ankursharma200/QuestForm/internal/model"
)

func clozeQuestion() model.Question {
	return model.Question{
		ID:       "q-cloze",
		Type:     model.QuestionTypeCloze,
		Text:     "Fill in the blanks",
		Sentence: "The __ jumped over the __.",
		Options:  []string{"cat", "dog", "moon"},
	}
}

func comprehensionQuestion() model.Question {
	return model.Question{
		ID:      "q-comp",
		Type:    model.QuestionTypeComprehension,
		Text:    "Read and answer",
		Passage: "A short passage.",
		MCQs: []model.MCQ{
			{Prompt: "First?", Options: []string{"yes", "no"}},
			{Prompt: "Second?", Options: []string{"a", "b", "c"}},
		},
	}
}

func TestEncodeClozePartiallyFilled(t *testing.T) {
	got, err := Encode(clozeQuestion(), json.RawMessage(`["cat"]`))
	require.NoError(t, err)
	assert.Equal(t, model.SlotAnswer{"cat", ""}, got)
}

func TestEncodeClozeTruncatesExtraSlots(t *testing.T) {
	got, err := Encode(clozeQuestion(), json.RawMessage(`["cat","moon","dog"]`))
	require.NoError(t, err)
	assert.Equal(t, model.SlotAnswer{"cat", "moon"}, got)
}

func TestEncodeMissingAnswerYieldsEmptyCanonical(t *testing.T) {
	got, err := Encode(clozeQuestion(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.SlotAnswer{"", ""}, got)

	got, err = Encode(comprehensionQuestion(), json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Equal(t, model.SlotAnswer{"", ""}, got)

	got, err = Encode(categorizeQuestion(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.CategorizeAnswer{}, got)
}

func TestEncodeComprehensionAlignsToMCQs(t *testing.T) {
	got, err := Encode(comprehensionQuestion(), json.RawMessage(`["yes"]`))
	require.NoError(t, err)
	assert.Equal(t, model.SlotAnswer{"yes", ""}, got)
}

func categorizeQuestion() model.Question {
	return model.Question{
		ID:         "q-cat",
		Type:       model.QuestionTypeCategorize,
		Text:       "Sort them",
		Categories: []string{"Fruit", "Veg"},
		Items: []model.CategorizeItem{
			{Text: "Apple"},
			{Text: "Carrot"},
		},
	}
}

func TestEncodeCategorizeFiltersUndeclaredCategories(t *testing.T) {
	got, err := Encode(categorizeQuestion(), json.RawMessage(`{"Apple":"Fruit","Carrot":"Dairy","Mango":"Fruit"}`))
	require.NoError(t, err)
	assert.Equal(t, model.CategorizeAnswer{"Apple": "Fruit"}, got)
}

func TestEncodeRejectsWrongShape(t *testing.T) {
	_, err := Encode(clozeQuestion(), json.RawMessage(`{"not":"an array"}`))
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "q-cloze", verr.Field)

	_, err = Encode(categorizeQuestion(), json.RawMessage(`["wrong"]`))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "q-cat", verr.Field)
}

func TestEncodeUnknownQuestionType(t *testing.T) {
	_, err := Encode(model.Question{Type: "Essay"}, json.RawMessage(`"free text"`))
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuestionType)

	_, err = Empty(model.Question{Type: "Essay"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuestionType)
}
