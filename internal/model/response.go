package model

import "time"

// CategorizeAnswer is the canonical encoding of a Categorize answer:
// item text -> assigned category name. Unassigned items are absent.
type CategorizeAnswer map[string]string

// SlotAnswer is the canonical encoding of Cloze and Comprehension answers:
// one string per blank (respectively per MCQ), in order, "" = unanswered.
type SlotAnswer []string

// AnswerRecord pairs a question with its canonical answer value. Answer
// holds one of CategorizeAnswer or SlotAnswer depending on the question type.
type AnswerRecord struct {
	QuestionID string      `json:"questionId" bson:"questionId"`
	Answer     interface{} `json:"answer" bson:"answer"`
}

// Response is one submission against a form. Responses are immutable once
// stored: there is no update or delete operation.
type Response struct {
	ID          string         `json:"id,omitempty" bson:"_id,omitempty"`
	FormID      string         `json:"formId" bson:"formId"`
	SubmittedAt time.Time      `json:"submittedAt" bson:"submittedAt"`
	Answers     []AnswerRecord `json:"answers" bson:"answers"`
}
