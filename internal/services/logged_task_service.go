package services

import (
	"context"
	"log/slog"
	"time"

	model "task-tracker.com/task-tracker/internal/models"
)

type loggedTaskService struct {
	next   TaskService
	logger *slog.Logger
}

func WithLogging(next TaskService, logger *slog.Logger) TaskService {
	return &loggedTaskService{
		next:   next,
		logger: logger.With("component", "task_service"),
	}
}

func (s *loggedTaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	start := time.Now()
	task, err := s.next.CreateTask(ctx, in)
	if err != nil {
		s.failed(ctx, "create", start, err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "task created",
		"task_id", task.ID,
		"status", task.Status,
		"requested_status", in.Status,
		"duration", time.Since(start))
	return task, nil
}

func (s *loggedTaskService) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	start := time.Now()
	task, err := s.next.GetTask(ctx, id)
	if err != nil {
		s.failed(ctx, "get", start, err, "task_id", id)
		return nil, err
	}

	s.logger.DebugContext(ctx, "task fetched", "task_id", id, "found", task != nil, "duration", time.Since(start))
	return task, nil
}

func (s *loggedTaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	start := time.Now()
	tasks, err := s.next.ListTasks(ctx)
	if err != nil {
		s.failed(ctx, "list", start, err)
		return nil, err
	}

	s.logger.DebugContext(ctx, "tasks listed", "count", len(tasks), "duration", time.Since(start))
	return tasks, nil
}

func (s *loggedTaskService) UpdateTask(ctx context.Context, in UpdateTaskInput) (*model.Task, error) {
	start := time.Now()
	task, err := s.next.UpdateTask(ctx, in)
	if err != nil {
		s.failed(ctx, "update", start, err, "task_id", in.ID, "requested_status", in.Status)
		return nil, err
	}

	if task == nil {
		s.logger.InfoContext(ctx, "task to update not found", "task_id", in.ID)
		return nil, nil
	}

	s.logger.InfoContext(ctx, "task updated", "task_id", task.ID, "status", task.Status, "duration", time.Since(start))
	return task, nil
}

func (s *loggedTaskService) DeleteTask(ctx context.Context, id int64) (bool, error) {
	start := time.Now()
	deleted, err := s.next.DeleteTask(ctx, id)
	if err != nil {
		s.failed(ctx, "delete", start, err, "task_id", id)
		return false, err
	}

	s.logger.InfoContext(ctx, "task delete handled", "task_id", id, "deleted", deleted, "duration", time.Since(start))
	return deleted, nil
}

func (s *loggedTaskService) failed(ctx context.Context, op string, start time.Time, err error, args ...any) {
	args = append(args, "op", op, "error", err, "duration", time.Since(start))
	s.logger.WarnContext(ctx, "task operation failed", args...)
}
