package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankursharma200/QuestForm/internal/apperrors"
	"github.com/ankursharma200/QuestForm/internal/model"
)

func testForm() model.Form {
	return model.Form{
		ID:    "form-1",
		Title: "Grocery quiz",
		Questions: []model.Question{
			{ID: "q1", Type: model.QuestionTypeCategorize, Text: "sort", Categories: []string{"Fruit"}},
			{ID: "q2", Type: model.QuestionTypeCloze, Text: "fill", Sentence: "a __ b"},
			{ID: "q3", Type: model.QuestionTypeComprehension, Text: "read", Passage: "p",
				MCQs: []model.MCQ{{Prompt: "pick", Options: []string{"a", "b"}}}},
		},
	}
}

func questionIDs(f model.Form) []string {
	ids := make([]string, len(f.Questions))
	for i, q := range f.Questions {
		ids[i] = q.ID
	}
	return ids
}

func TestAddQuestion(t *testing.T) {
	f := testForm()
	out, err := AddQuestion(f, model.QuestionTypeCloze)
	require.NoError(t, err)

	assert.Len(t, out.Questions, 4)
	assert.Equal(t, model.QuestionTypeCloze, out.Questions[3].Type)
	assert.Empty(t, out.Questions[3].ID, "storage id is assigned on persistence, not here")
	assert.Len(t, f.Questions, 3, "input snapshot must stay untouched")

	_, err = AddQuestion(f, "Essay")
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuestionType)
}

func TestUpdateQuestion(t *testing.T) {
	f := testForm()
	patch := model.Question{Type: model.QuestionTypeCloze, Text: "new text", Sentence: "x __ y"}

	out, err := UpdateQuestion(f, "q2", patch)
	require.NoError(t, err)
	assert.Equal(t, "q2", out.Questions[1].ID, "id must survive the patch")
	assert.Equal(t, "new text", out.Questions[1].Text)
	assert.Equal(t, "x __ y", out.Questions[1].Sentence)
	assert.Equal(t, "fill", f.Questions[1].Text, "input snapshot must stay untouched")

	_, err = UpdateQuestion(f, "missing", patch)
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
}

func TestRemoveQuestion(t *testing.T) {
	f := testForm()

	out, err := RemoveQuestion(f, "q2")
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q3"}, questionIDs(out))
	assert.Equal(t, []string{"q1", "q2", "q3"}, questionIDs(f))

	_, err = RemoveQuestion(f, "missing")
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
}

func TestReorder(t *testing.T) {
	f := testForm()

	out, err := Reorder(f, "q3", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"q3", "q1", "q2"}, questionIDs(out), "relative order of the others must hold")

	out, err = Reorder(f, "q1", 99)
	require.NoError(t, err)
	assert.Equal(t, []string{"q2", "q3", "q1"}, questionIDs(out), "target index clamps to the end")

	out, err = Reorder(f, "q2", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2", "q3"}, questionIDs(out), "moving to the current index is a no-op")

	_, err = Reorder(f, "missing", 0)
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
}

func TestValidateAggregatesAllFailures(t *testing.T) {
	f := testForm()
	f.Title = ""
	f.Questions[0].Categories = nil       // categorize without categories
	f.Questions[2].MCQs[0].Options = nil  // mcq without options
	f.Questions[1].Sentence = "no blanks" // warning only

	_, err := Validate(f)
	var invalid *apperrors.FormInvalidError
	require.ErrorAs(t, err, &invalid)

	require.Len(t, invalid.FormErrors, 1)
	assert.Equal(t, "title", invalid.FormErrors[0].Field)

	require.Len(t, invalid.Failures, 2, "validation must not stop at the first failing question")
	assert.Equal(t, 0, invalid.Failures[0].Index)
	assert.Equal(t, "q1", invalid.Failures[0].QuestionID)
	assert.Equal(t, 2, invalid.Failures[1].Index)
	assert.Equal(t, "q3", invalid.Failures[1].QuestionID)
}

func TestValidateCleanFormWithWarnings(t *testing.T) {
	f := testForm()
	f.Questions[1].Sentence = "no blanks"

	warnings, err := Validate(f)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "questions[1]")
}
