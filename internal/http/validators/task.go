package validators

import (
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// ParseTaskID reads the :id path parameter.
func ParseTaskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidTaskID
	}
	return id, nil
}

func ValidateUpdateTaskRequest(pathID int64, r *dto.UpdateTaskRequest) error {
	if r.ID != pathID {
		return apperrors.ErrTaskIDMismatch
	}
	return nil
}
