package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AnthonySaastify/Dr.Viva-v2/drivestore"
	"github.com/AnthonySaastify/Dr.Viva-v2/models"
)

// MockSheetTaskStore mocks the sheet row adapter for testing
type MockSheetTaskStore struct {
	mock.Mock
}

func (m *MockSheetTaskStore) Append(ctx context.Context, task models.Task) (models.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(models.Task), args.Error(1)
}

func (m *MockSheetTaskStore) UpdateStatus(ctx context.Context, id string, status models.TaskStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockSheetTaskStore) List(ctx context.Context) ([]models.Task, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Task), args.Error(1)
}

// MockSheetInitializer mocks the bootstrap initializer
type MockSheetInitializer struct {
	mock.Mock
}

func (m *MockSheetInitializer) EnsureReady(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSessionFileResolver mocks the Drive attachment lookup
type MockSessionFileResolver struct {
	mock.Mock
}

func (m *MockSessionFileResolver) FilesForSession(ctx context.Context, ref models.SessionRef) ([]drivestore.SessionFile, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]drivestore.SessionFile), args.Error(1)
}
