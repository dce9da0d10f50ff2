package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AnthonySaastify/Dr.Viva-v2/models"
	"github.com/AnthonySaastify/Dr.Viva-v2/sheetstore"
	"github.com/AnthonySaastify/Dr.Viva-v2/testutils"
)

func TestCreateTaskValidatesBeforeAnyRemoteCall(t *testing.T) {
	store := new(testutils.MockSheetTaskStore)
	bootstrap := new(testutils.MockSheetInitializer)
	service := NewTaskService(store, bootstrap)

	_, err := service.CreateTask(context.Background(), models.TaskInput{Title: "", Description: "something"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateTask(context.Background(), models.TaskInput{Title: "something", Description: "   "})
	assert.ErrorIs(t, err, ErrValidation)

	bootstrap.AssertNotCalled(t, "EnsureReady", mock.Anything)
	store.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCreateTaskDefaultsStatusAndAssignsID(t *testing.T) {
	store := new(testutils.MockSheetTaskStore)
	bootstrap := new(testutils.MockSheetInitializer)
	service := NewTaskService(store, bootstrap)

	bootstrap.On("EnsureReady", mock.Anything).Return(nil)

	var appended models.Task
	store.On("Append", mock.Anything, mock.AnythingOfType("models.Task")).
		Run(func(args mock.Arguments) { appended = args.Get(1).(models.Task) }).
		Return(models.Task{ID: "echo", Status: models.StatusPending}, nil)

	_, err := service.CreateTask(context.Background(), models.TaskInput{
		Title:       "Review anatomy notes",
		Description: "Upper limb",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, appended.ID)
	assert.Equal(t, models.StatusPending, appended.Status)
	assert.Equal(t, "Review anatomy notes", appended.Title)
}

func TestCreateTaskRejectsUnknownStatus(t *testing.T) {
	service := NewTaskService(new(testutils.MockSheetTaskStore), new(testutils.MockSheetInitializer))

	_, err := service.CreateTask(context.Background(), models.TaskInput{
		Title:       "x",
		Description: "y",
		Status:      "Archived",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCreateTaskBootstrapFailure(t *testing.T) {
	store := new(testutils.MockSheetTaskStore)
	bootstrap := new(testutils.MockSheetInitializer)
	service := NewTaskService(store, bootstrap)

	bootstrap.On("EnsureReady", mock.Anything).Return(errors.New("spreadsheet sheet-1 is not reachable"))

	_, err := service.CreateTask(context.Background(), models.TaskInput{Title: "x", Description: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize sheet:")
	store.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCreateTaskAppendFailure(t *testing.T) {
	store := new(testutils.MockSheetTaskStore)
	bootstrap := new(testutils.MockSheetInitializer)
	service := NewTaskService(store, bootstrap)

	bootstrap.On("EnsureReady", mock.Anything).Return(nil)
	store.On("Append", mock.Anything, mock.Anything).Return(models.Task{}, errors.New("Google Sheets error: quota"))

	_, err := service.CreateTask(context.Background(), models.TaskInput{Title: "x", Description: "y"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSetTaskStatusSkipsBootstrap(t *testing.T) {
	store := new(testutils.MockSheetTaskStore)
	bootstrap := new(testutils.MockSheetInitializer)
	service := NewTaskService(store, bootstrap)

	store.On("UpdateStatus", mock.Anything, "task-1", models.StatusDone).Return(nil)

	require.NoError(t, service.SetTaskStatus(context.Background(), "task-1", models.StatusDone))
	bootstrap.AssertNotCalled(t, "EnsureReady", mock.Anything)
}

func TestSetTaskStatusUnknownID(t *testing.T) {
	store := new(testutils.MockSheetTaskStore)
	service := NewTaskService(store, new(testutils.MockSheetInitializer))

	store.On("UpdateStatus", mock.Anything, "missing", models.StatusDone).
		Return(fmt.Errorf("%w: id missing", sheetstore.ErrRowNotFound))

	err := service.SetTaskStatus(context.Background(), "missing", models.StatusDone)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestSetTaskStatusValidation(t *testing.T) {
	store := new(testutils.MockSheetTaskStore)
	service := NewTaskService(store, new(testutils.MockSheetInitializer))

	assert.ErrorIs(t, service.SetTaskStatus(context.Background(), "", models.StatusDone), ErrValidation)
	assert.ErrorIs(t, service.SetTaskStatus(context.Background(), "task-1", "Archived"), ErrInvalidStatus)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestListTasksReturnsEmptySliceOnBootstrapFailure(t *testing.T) {
	store := new(testutils.MockSheetTaskStore)
	bootstrap := new(testutils.MockSheetInitializer)
	service := NewTaskService(store, bootstrap)

	bootstrap.On("EnsureReady", mock.Anything).Return(errors.New("boom"))

	tasks, err := service.ListTasks(context.Background())
	require.Error(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
	store.AssertNotCalled(t, "List", mock.Anything)
}

func TestListTasksSuccess(t *testing.T) {
	store := new(testutils.MockSheetTaskStore)
	bootstrap := new(testutils.MockSheetInitializer)
	service := NewTaskService(store, bootstrap)

	bootstrap.On("EnsureReady", mock.Anything).Return(nil)
	store.On("List", mock.Anything).Return([]models.Task{
		{ID: "task-1", Title: "First", Status: models.StatusPending},
		{ID: "task-2", Title: "Second", Status: models.StatusDone},
	}, nil)

	tasks, err := service.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "task-2", tasks[1].ID)
}
