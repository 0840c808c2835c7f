package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankursharma200/QuestForm/internal/apperrors"
	"github.com/ankursharma200/QuestForm/internal/model"
)

func TestSessionAssignsStableHandles(t *testing.T) {
	s := NewSession(testForm())

	qs := s.Questions()
	require.Len(t, qs, 3)
	handles := map[string]bool{}
	for _, sq := range qs {
		require.NotEmpty(t, sq.Handle)
		require.NotEqual(t, sq.Question.ID, sq.Handle, "handles are never derived from storage identity")
		handles[sq.Handle] = true
	}
	assert.Len(t, handles, 3, "handles must be unique")

	// Handles survive a reorder.
	require.NoError(t, s.Reorder(qs[2].Handle, 0))
	after := s.Questions()
	assert.Equal(t, qs[2].Handle, after[0].Handle)
	assert.Equal(t, "q3", after[0].Question.ID)
}

func TestSessionAddUpdateRemove(t *testing.T) {
	s := NewSession(model.Form{Title: "draft"})

	h, err := s.Add(model.QuestionTypeCategorize)
	require.NoError(t, err)
	require.Len(t, s.Questions(), 1)

	updated := model.Question{Type: model.QuestionTypeCategorize, Text: "sort", Categories: []string{"A"}}
	require.NoError(t, s.Update(h, updated))
	assert.Equal(t, "sort", s.Questions()[0].Question.Text)

	require.NoError(t, s.Remove(h))
	assert.Empty(t, s.Questions())

	assert.ErrorIs(t, s.Update(h, updated), apperrors.ErrQuestionNotFound)
	assert.ErrorIs(t, s.Remove(h), apperrors.ErrQuestionNotFound)
	assert.ErrorIs(t, s.Reorder(h, 0), apperrors.ErrQuestionNotFound)
}

func TestSessionUpdatePreservesStorageID(t *testing.T) {
	s := NewSession(testForm())
	h := s.Questions()[0].Handle

	patch := model.Question{ID: "spoofed", Type: model.QuestionTypeCategorize, Text: "sort", Categories: []string{"A"}}
	require.NoError(t, s.Update(h, patch))
	assert.Equal(t, "q1", s.Questions()[0].Question.ID)
}

func TestSessionSnapshotStripsHandles(t *testing.T) {
	s := NewSession(testForm())
	_, err := s.Add(model.QuestionTypeCloze)
	require.NoError(t, err)
	require.NoError(t, s.Reorder(s.Questions()[3].Handle, 0))

	snap := s.Snapshot()
	assert.Equal(t, "Grocery quiz", snap.Title)
	require.Len(t, snap.Questions, 4)
	assert.Empty(t, snap.Questions[0].ID, "new question has no storage id yet")
	assert.Equal(t, []string{"", "q1", "q2", "q3"}, questionIDs(snap))
}
