package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/ankursharma200/QuestForm/internal/apperrors"
	"github.com/ankursharma200/QuestForm/internal/model"
	"github.com/ankursharma200/QuestForm/internal/service"
)

// ResponseHandler handles response endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
	validate    *validator.Validate
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{
		responseSvc: responseSvc,
		validate:    validator.New(),
	}
}

// AnswerPayload is one submitted answer; the answer value stays raw until
// the variant encoder normalizes it.
type AnswerPayload struct {
	QuestionID string          `json:"questionId" validate:"required"`
	Answer     json.RawMessage `json:"answer"`
}

// SubmitResponsePayload is the request body for submitting a response
type SubmitResponsePayload struct {
	FormID  string          `json:"formId" validate:"required"`
	Answers []AnswerPayload `json:"answers" validate:"dive"`
}

// Submit handles POST /api/responses
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitResponsePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Error submitting response",
			"errors":  apperrors.ToValidationErrors(err),
		})
		return
	}

	answers := make([]service.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, service.SubmittedAnswer{QuestionID: a.QuestionID, Answer: a.Answer})
	}

	_, err := h.responseSvc.Submit(r.Context(), req.FormID, answers)
	if errors.Is(err, apperrors.ErrFormNotFound) {
		writeError(w, http.StatusNotFound, "Cannot submit to a form that does not exist.")
		return
	}
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Error submitting response",
			"errors":  apperrors.ValidationErrors{*verr},
		})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Response submitted successfully!",
	})
}

// ListByForm handles GET /api/responses/form/{formId}
func (h *ResponseHandler) ListByForm(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	responses, err := h.responseSvc.ListByForm(r.Context(), formID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if responses == nil {
		responses = []*model.Response{}
	}

	writeJSON(w, http.StatusOK, responses)
}
