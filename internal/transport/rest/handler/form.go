package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/ankursharma200/QuestForm/internal/apperrors"
	"github.com/ankursharma200/QuestForm/internal/model"
	"github.com/ankursharma200/QuestForm/internal/service"
)

// FormHandler handles form endpoints
type FormHandler struct {
	formSvc  *service.FormService
	validate *validator.Validate
}

// NewFormHandler creates a new form handler
func NewFormHandler(formSvc *service.FormService) *FormHandler {
	return &FormHandler{
		formSvc:  formSvc,
		validate: validator.New(),
	}
}

// FormPayload is the request body for creating or replacing a form
type FormPayload struct {
	Title          string           `json:"title" validate:"required"`
	HeaderImageURL string           `json:"headerImageUrl" validate:"omitempty,url"`
	Questions      []model.Question `json:"questions"`
	CreatedBy      string           `json:"createdBy"`
}

// validateQuestions checks the question shapes the document schema insists on
// at save time: a known question type and a non-empty question text.
func validateQuestions(questions []model.Question) apperrors.ValidationErrors {
	var errs apperrors.ValidationErrors
	for i, q := range questions {
		if !q.Type.Valid() {
			errs = append(errs, *apperrors.NewValidationError(
				fmt.Sprintf("questions[%d].questionType", i),
				"must be Categorize, Cloze or Comprehension", string(q.Type)))
		}
		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, *apperrors.NewValidationError(
				fmt.Sprintf("questions[%d].questionText", i), "is required", q.Text))
		}
	}
	return errs
}

// Create handles POST /api/forms
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req FormPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Error creating form",
			"errors":  apperrors.ToValidationErrors(err),
		})
		return
	}
	if errs := validateQuestions(req.Questions); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Error creating form",
			"errors":  errs,
		})
		return
	}

	f := &model.Form{
		Title:          req.Title,
		HeaderImageURL: req.HeaderImageURL,
		Questions:      req.Questions,
		CreatedBy:      req.CreatedBy,
	}

	id, err := h.formSvc.Create(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Form created successfully!",
		"formId":  id,
	})
}

// Get handles GET /api/forms/{formId}
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	f, err := h.formSvc.Get(r.Context(), formID)
	if errors.Is(err, apperrors.ErrFormNotFound) {
		writeError(w, http.StatusNotFound, "Form not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, f)
}

// Update handles PUT /api/forms/{formId}
func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req FormPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Error updating form",
			"errors":  apperrors.ToValidationErrors(err),
		})
		return
	}
	if errs := validateQuestions(req.Questions); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Error updating form",
			"errors":  errs,
		})
		return
	}

	f := &model.Form{
		Title:          req.Title,
		HeaderImageURL: req.HeaderImageURL,
		Questions:      req.Questions,
	}

	updated, err := h.formSvc.Update(r.Context(), formID, f)
	if errors.Is(err, apperrors.ErrFormNotFound) {
		writeError(w, http.StatusNotFound, "Form not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Form updated successfully!",
		"form":    updated,
	})
}

// Publish handles POST /api/forms/{formId}/publish
func (h *FormHandler) Publish(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	f, warnings, err := h.formSvc.Publish(r.Context(), formID)
	if errors.Is(err, apperrors.ErrFormNotFound) {
		writeError(w, http.StatusNotFound, "Form not found")
		return
	}
	var invalid *apperrors.FormInvalidError
	if errors.As(err, &invalid) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"message":    "Form is not valid for publishing",
			"formErrors": invalid.FormErrors,
			"failures":   invalid.Failures,
			"warnings":   warnings,
		})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Form published successfully!",
		"form":     f,
		"warnings": warnings,
	})
}

// List handles GET /api/forms?createdBy=...
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	createdBy := r.URL.Query().Get("createdBy")
	if createdBy == "" {
		createdBy = "anonymous"
	}

	forms, err := h.formSvc.ListByCreator(r.Context(), createdBy)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if forms == nil {
		forms = []*model.Form{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"forms": forms})
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
