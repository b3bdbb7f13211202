package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"task-tracker.com/task-tracker/internal/constants"
	"task-tracker.com/task-tracker/internal/lifecycle"
	model "task-tracker.com/task-tracker/internal/models"
)

var ErrInvalidInput = errors.New("invalid task input")

// TaskService is the set of task use cases. Caching and logging are layered
// on top of the store-backed implementation with WithCache and WithLogging.
//
// GetTask and UpdateTask return nil, nil when the task does not exist;
// DeleteTask reports that case as false.
type TaskService interface {
	CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error)
	GetTask(ctx context.Context, id int64) (*model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	UpdateTask(ctx context.Context, in UpdateTaskInput) (*model.Task, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
}

// TaskStore is the persistence the service needs. FindByID returns nil, nil
// for an unknown id.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, task *model.Task) error
}

type CreateTaskInput struct {
	Title       string  `validate:"required,max=100"`
	Description *string `validate:"omitempty,max=500"`
	// Status only matters when it is exactly "InProgress"; every other
	// label, known or not, creates a Pending task.
	Status  string
	DueDate *time.Time
}

type UpdateTaskInput struct {
	ID          int64   `validate:"gt=0"`
	Title       string  `validate:"required,max=100"`
	Description *string `validate:"omitempty,max=500"`
	Status      string
	// A nil DueDate keeps the stored value.
	DueDate *time.Time
}

type taskService struct {
	store    TaskStore
	validate *validator.Validate
	now      func() time.Time
}

func NewTaskService(store TaskStore, validate *validator.Validate) TaskService {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}
	return &taskService{
		store:    store,
		validate: validate,
		now:      time.Now,
	}
}

func (s *taskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      constants.StatusPending,
		DueDate:     s.dueDate(in.DueDate),
	}

	if in.Status == string(constants.StatusInProgress) {
		next, err := lifecycle.Fire(task.Status, constants.TriggerStart)
		if err != nil {
			return nil, err
		}
		task.Status = next
	}

	if err := s.store.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	return s.store.FindByID(ctx, id)
}

func (s *taskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.store.List(ctx)
}

// UpdateTask resolves the status change before touching the loaded record,
// so a rejected label or transition leaves nothing to persist.
func (s *taskService) UpdateTask(ctx context.Context, in UpdateTaskInput) (*model.Task, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	task, err := s.store.FindByID(ctx, in.ID)
	if err != nil || task == nil {
		return nil, err
	}

	requested, err := constants.ParseTaskStatus(in.Status)
	if err != nil {
		return nil, err
	}

	status := task.Status
	trigger, changed, err := lifecycle.TriggerFor(task.Status, requested)
	if err != nil {
		return nil, err
	}
	if changed {
		if status, err = lifecycle.Fire(task.Status, trigger); err != nil {
			return nil, err
		}
	}

	updated := *task
	updated.Title = in.Title
	updated.Description = in.Description
	updated.Status = status
	if in.DueDate != nil {
		updated.DueDate = in.DueDate.UTC()
	}

	if err := s.store.Update(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) (bool, error) {
	task, err := s.store.FindByID(ctx, id)
	if err != nil || task == nil {
		return false, err
	}

	if err := s.store.Delete(ctx, task); err != nil {
		return false, err
	}

	return true, nil
}

func (s *taskService) dueDate(requested *time.Time) time.Time {
	if requested != nil {
		return requested.UTC()
	}
	return s.now().UTC().Add(model.DefaultDueIn)
}
