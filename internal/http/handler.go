package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/lifecycle"
	"task-tracker.com/task-tracker/internal/services"
)

// Pinger is anything the health endpoint can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	taskService services.TaskService
	checks      map[string]Pinger
}

func NewHandler(taskService services.TaskService, checks map[string]Pinger) *Handler {
	return &Handler{
		taskService: taskService,
		checks:      checks,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return translate(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/tasks/"+strconv.FormatInt(task.ID, 10))
	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if task == nil {
		return apperrors.ErrTaskNotFound
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return apperrors.ErrNoTasksFound
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateUpdateTaskRequest(id, &req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), services.UpdateTaskInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return translate(err)
	}
	if task == nil {
		return apperrors.ErrTaskNotFound
	}

	return c.JSON(http.StatusOK, dto.UpdateTaskResponse{
		Message: fmt.Sprintf("Task updated successfully. Current status: %s", task.Status),
		Task:    task,
	})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c)
	if err != nil {
		return err
	}

	deleted, err := h.taskService.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrTaskNotFound
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Health(c echo.Context) error {
	resp := dto.HealthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK

	for name, p := range h.checks {
		if err := p.Ping(c.Request().Context()); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	return c.JSON(status, resp)
}

// translate maps domain rejections to client errors; anything else is
// returned untouched and rendered as a server error.
func translate(err error) error {
	switch {
	case errors.Is(err, constants.ErrInvalidStatus):
		return apperrors.ErrInvalidStatus.Wrap(err)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return apperrors.ErrInvalidTransition.Wrap(err)
	case errors.Is(err, services.ErrInvalidInput):
		return apperrors.ErrValidation.Wrap(errors.New(validators.Describe(err)))
	default:
		return err
	}
}
