package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ankursharma200/QuestForm/internal/apperrors"
	"github.com/ankursharma200/QuestForm/internal/cache"
	"github.com/ankursharma200/QuestForm/internal/form"
	"github.com/ankursharma200/QuestForm/internal/model"
	"github.com/ankursharma200/QuestForm/internal/repository"
)

// FormService handles form CRUD and publishing
type FormService struct {
	formRepo  repository.FormRepo
	formCache cache.FormCache
	log       logrus.FieldLogger
}

// NewFormService creates a new form service
func NewFormService(formRepo repository.FormRepo, formCache cache.FormCache, log logrus.FieldLogger) *FormService {
	return &FormService{
		formRepo:  formRepo,
		formCache: formCache,
		log:       log,
	}
}

// Create stores a new form. Questions, categorize items and MCQs receive
// their stable ids here, on first persistence.
func (s *FormService) Create(ctx context.Context, f *model.Form) (string, error) {
	if f.CreatedBy == "" {
		f.CreatedBy = "anonymous"
	}
	ensureIdentities(f)
	return s.formRepo.Create(ctx, f)
}

// Get retrieves a form by id, read-through the cache.
func (s *FormService) Get(ctx context.Context, id string) (*model.Form, error) {
	if cached, err := s.formCache.Get(ctx, id); err != nil {
		s.log.WithError(err).WithField("formId", id).Warn("form cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	f, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, apperrors.ErrFormNotFound
	}

	if err := s.formCache.Set(ctx, f); err != nil {
		s.log.WithError(err).WithField("formId", id).Warn("form cache write failed")
	}
	return f, nil
}

// Update wholesale-replaces a form's title, header image and question list.
// The incoming question list is authoritative; questions without ids are
// treated as new and get fresh identities.
func (s *FormService) Update(ctx context.Context, id string, f *model.Form) (*model.Form, error) {
	existing, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.ErrFormNotFound
	}

	f.ID = id
	f.CreatedBy = existing.CreatedBy
	f.CreatedAt = existing.CreatedAt
	f.Published = existing.Published
	ensureIdentities(f)

	if err := s.formRepo.Update(ctx, f); err != nil {
		return nil, err
	}
	if err := s.formCache.Invalidate(ctx, id); err != nil {
		s.log.WithError(err).WithField("formId", id).Warn("form cache invalidation failed")
	}
	return f, nil
}

// Publish validates every question of the form, aggregating all failures.
// On success the form is marked published; the returned warnings are
// non-blocking authoring hints.
func (s *FormService) Publish(ctx context.Context, id string) (*model.Form, []string, error) {
	f, err := s.formRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if f == nil {
		return nil, nil, apperrors.ErrFormNotFound
	}

	warnings, err := form.Validate(*f)
	if err != nil {
		return nil, warnings, err
	}

	f.Published = true
	if err := s.formRepo.Update(ctx, f); err != nil {
		return nil, warnings, err
	}
	if err := s.formCache.Invalidate(ctx, id); err != nil {
		s.log.WithError(err).WithField("formId", id).Warn("form cache invalidation failed")
	}
	return f, warnings, nil
}

// ListByCreator retrieves all forms created by one author.
func (s *FormService) ListByCreator(ctx context.Context, createdBy string) ([]*model.Form, error) {
	return s.formRepo.GetByCreator(ctx, createdBy)
}

// ensureIdentities assigns storage ids to questions, categorize items and
// MCQs that do not have one yet. Existing ids are never touched.
func ensureIdentities(f *model.Form) {
	for qi := range f.Questions {
		q := &f.Questions[qi]
		if q.ID == "" {
			q.ID = primitive.NewObjectID().Hex()
		}
		for ii := range q.Items {
			if q.Items[ii].ID == "" {
				q.Items[ii].ID = primitive.NewObjectID().Hex()
			}
		}
		for mi := range q.MCQs {
			if q.MCQs[mi].ID == "" {
				q.MCQs[mi].ID = primitive.NewObjectID().Hex()
			}
		}
	}
}
