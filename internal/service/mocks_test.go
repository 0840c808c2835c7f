package service

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/ankursharma200/QuestForm/internal/model"
)

// MockFormRepo is a mock implementation of repository.FormRepo
type MockFormRepo struct {
	mock.Mock
}

func (m *MockFormRepo) Create(ctx context.Context, form *model.Form) (string, error) {
	args := m.Called(ctx, form)
	return args.String(0), args.Error(1)
}

func (m *MockFormRepo) GetByID(ctx context.Context, id string) (*model.Form, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*model.Form), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFormRepo) GetByCreator(ctx context.Context, createdBy string) ([]*model.Form, error) {
	args := m.Called(ctx, createdBy)
	if forms := args.Get(0); forms != nil {
		return forms.([]*model.Form), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFormRepo) Update(ctx context.Context, form *model.Form) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

// MockResponseRepo is a mock implementation of repository.ResponseRepo
type MockResponseRepo struct {
	mock.Mock
}

func (m *MockResponseRepo) Create(ctx context.Context, response *model.Response) (string, error) {
	args := m.Called(ctx, response)
	return args.String(0), args.Error(1)
}

func (m *MockResponseRepo) GetByFormID(ctx context.Context, formID string) ([]*model.Response, error) {
	args := m.Called(ctx, formID)
	if responses := args.Get(0); responses != nil {
		return responses.([]*model.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockFormCache is a mock implementation of cache.FormCache
type MockFormCache struct {
	mock.Mock
}

func (m *MockFormCache) Set(ctx context.Context, form *model.Form) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockFormCache) Get(ctx context.Context, id string) (*model.Form, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*model.Form), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFormCache) Invalidate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
