package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ankursharma200/QuestForm/internal/answer"
	"github.com/ankursharma200/QuestForm/internal/apperrors"
	"github.com/ankursharma200/QuestForm/internal/model"
	"github.com/ankursharma200/QuestForm/internal/repository"
)

// SubmittedAnswer is one raw answer as supplied by the filler, keyed by the
// question's storage id. The payload shape is variant-specific and is
// normalized by the answer encoder before persistence.
type SubmittedAnswer struct {
	QuestionID string
	Answer     json.RawMessage
}

// ResponseService handles response submission and retrieval
type ResponseService struct {
	responseRepo repository.ResponseRepo
	formRepo     repository.FormRepo
	log          logrus.FieldLogger
}

// NewResponseService creates a new response service
func NewResponseService(responseRepo repository.ResponseRepo, formRepo repository.FormRepo, log logrus.FieldLogger) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
		formRepo:     formRepo,
		log:          log,
	}
}

// Submit records one submission against a form. The form must exist;
// otherwise ErrFormNotFound is returned and nothing is persisted. Every
// question of the form produces exactly one answer record, in question
// order; questions the filler left out get their variant's empty canonical
// value. The whole submission persists as one unit.
func (s *ResponseService) Submit(ctx context.Context, formID string, answers []SubmittedAnswer) (*model.Response, error) {
	f, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperrors.ErrFormNotFound
	}

	supplied := make(map[string]json.RawMessage, len(answers))
	for _, a := range answers {
		supplied[a.QuestionID] = a.Answer
	}

	records := make([]model.AnswerRecord, 0, len(f.Questions))
	for _, q := range f.Questions {
		encoded, err := answer.Encode(q, supplied[q.ID])
		if err != nil {
			return nil, err
		}
		records = append(records, model.AnswerRecord{QuestionID: q.ID, Answer: encoded})
	}

	response := &model.Response{
		FormID:      f.ID,
		SubmittedAt: time.Now(),
		Answers:     records,
	}
	if _, err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"formId":     f.ID,
		"responseId": response.ID,
		"answers":    len(records),
	}).Info("response submitted")
	return response, nil
}

// ListByForm retrieves every response submitted against a form.
func (s *ResponseService) ListByForm(ctx context.Context, formID string) ([]*model.Response, error) {
	return s.responseRepo.GetByFormID(ctx, formID)
}
