package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/AnthonySaastify/Dr.Viva-v2/models"
	"github.com/AnthonySaastify/Dr.Viva-v2/sheetstore"
)

// SheetTaskStore is the row-level adapter to the remote task sheet.
type SheetTaskStore interface {
	Append(ctx context.Context, task models.Task) (models.Task, error)
	UpdateStatus(ctx context.Context, id string, status models.TaskStatus) error
	List(ctx context.Context) ([]models.Task, error)
}

// SheetInitializer makes sure the sheet and header exist before use.
type SheetInitializer interface {
	EnsureReady(ctx context.Context) error
}

type TaskServiceInterface interface {
	CreateTask(ctx context.Context, input models.TaskInput) (models.Task, error)
	SetTaskStatus(ctx context.Context, id string, status models.TaskStatus) error
	ListTasks(ctx context.Context) ([]models.Task, error)
}

// TaskService is the only write/read path to the remote task store. There
// is no caching layer; every call is a fresh round trip.
type TaskService struct {
	store     SheetTaskStore
	bootstrap SheetInitializer
}

func NewTaskService(store SheetTaskStore, bootstrap SheetInitializer) *TaskService {
	return &TaskService{store: store, bootstrap: bootstrap}
}

func (s *TaskService) CreateTask(ctx context.Context, input models.TaskInput) (models.Task, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return models.Task{}, fmt.Errorf("%w: title and description are required", ErrValidation)
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.bootstrap.EnsureReady(ctx); err != nil {
		return models.Task{}, fmt.Errorf("failed to initialize sheet: %w", err)
	}

	task := models.Task{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Description:   input.Description,
		Status:        status,
		ScheduledDate: input.ScheduledDate,
	}

	created, err := s.store.Append(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return created, nil
}

// SetTaskStatus updates a single status cell. It deliberately skips the
// bootstrap check: a task ID can only come from a sheet that exists.
func (s *TaskService) SetTaskStatus(ctx context.Context, id string, status models.TaskStatus) error {
	if id == "" {
		return fmt.Errorf("%w: task id is required", ErrValidation)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sheetstore.ErrRowNotFound) {
			return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return nil
}

// ListTasks returns all rows of the sheet. On failure it returns an empty
// slice alongside the error so callers can render a non-crashing empty
// state.
func (s *TaskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	if err := s.bootstrap.EnsureReady(ctx); err != nil {
		return []models.Task{}, fmt.Errorf("failed to initialize sheet: %w", err)
	}

	tasks, err := s.store.List(ctx)
	if err != nil {
		return []models.Task{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return tasks, nil
}

var TaskServiceInstance TaskServiceInterface
