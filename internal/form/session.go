package form

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ankursharma200/QuestForm/internal/apperrors"
	"github.com/ankursharma200/QuestForm/internal/model"
)

// SessionQuestion pairs a question with its editing handle. The handle is a
// synthetic identity assigned the moment the question enters the session; it
// is never derived from storage identity, which does not exist until first
// persistence.
type SessionQuestion struct {
	Handle   string
	Question model.Question
}

// Session is the in-memory editing arena for one form. Handles stay stable
// across edits and reorders within the session and are stripped on snapshot.
type Session struct {
	form      model.Form
	questions []SessionQuestion
}

// NewSession opens an editing session over a form snapshot, assigning every
// existing question a fresh handle.
func NewSession(f model.Form) *Session {
	s := &Session{form: f}
	for _, q := range f.Questions {
		s.questions = append(s.questions, SessionQuestion{Handle: uuid.NewString(), Question: q})
	}
	return s
}

// Add appends a freshly-initialized question and returns its handle.
func (s *Session) Add(t model.QuestionType) (string, error) {
	q, err := model.NewQuestion(t)
	if err != nil {
		return "", err
	}
	sq := SessionQuestion{Handle: uuid.NewString(), Question: q}
	s.questions = append(s.questions, sq)
	return sq.Handle, nil
}

// Update replaces the question addressed by handle, preserving its storage id.
func (s *Session) Update(handle string, q model.Question) error {
	i, ok := s.index(handle)
	if !ok {
		return fmt.Errorf("%w: handle %q", apperrors.ErrQuestionNotFound, handle)
	}
	q.ID = s.questions[i].Question.ID
	s.questions[i].Question = q
	return nil
}

// Remove deletes the question addressed by handle.
func (s *Session) Remove(handle string) error {
	i, ok := s.index(handle)
	if !ok {
		return fmt.Errorf("%w: handle %q", apperrors.ErrQuestionNotFound, handle)
	}
	s.questions = append(s.questions[:i], s.questions[i+1:]...)
	return nil
}

// Reorder moves the question addressed by handle to targetIndex (clamped),
// preserving the relative order of the rest.
func (s *Session) Reorder(handle string, targetIndex int) error {
	i, ok := s.index(handle)
	if !ok {
		return fmt.Errorf("%w: handle %q", apperrors.ErrQuestionNotFound, handle)
	}
	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(s.questions)-1 {
		targetIndex = len(s.questions) - 1
	}
	if targetIndex == i {
		return nil
	}
	sq := s.questions[i]
	s.questions = append(s.questions[:i], s.questions[i+1:]...)
	s.questions = append(s.questions[:targetIndex], append([]SessionQuestion{sq}, s.questions[targetIndex:]...)...)
	return nil
}

// Questions returns the session's questions with their handles, in order.
func (s *Session) Questions() []SessionQuestion {
	return append([]SessionQuestion(nil), s.questions...)
}

// Snapshot produces the form payload to persist: handles are stripped,
// surviving storage ids are kept.
func (s *Session) Snapshot() model.Form {
	out := s.form
	out.Questions = make([]model.Question, len(s.questions))
	for i, sq := range s.questions {
		out.Questions[i] = sq.Question
	}
	return out
}

func (s *Session) index(handle string) (int, bool) {
	for i := range s.questions {
		if s.questions[i].Handle == handle {
			return i, true
		}
	}
	return -1, false
}
