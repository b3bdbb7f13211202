package constants

import (
	"errors"
	"fmt"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "InProgress"
	StatusCompleted  TaskStatus = "Completed"
)

var ErrInvalidStatus = errors.New("invalid status")

// ParseTaskStatus matches label exactly against the known status names.
func ParseTaskStatus(label string) (TaskStatus, error) {
	switch s := TaskStatus(label); s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, label)
	}
}

func (s TaskStatus) Valid() bool {
	_, err := ParseTaskStatus(string(s))
	return err == nil
}
