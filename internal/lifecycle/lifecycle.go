// Package lifecycle holds the task status state machine. It is a pure
// function of (status, trigger) and keeps no state of its own.
package lifecycle

import (
	"errors"
	"fmt"

	"task-tracker.com/task-tracker/internal/constants"
)

var ErrInvalidTransition = errors.New("invalid status transition")

var transitions = map[constants.TaskStatus]map[constants.TaskTrigger]constants.TaskStatus{
	constants.StatusPending: {
		constants.TriggerStart: constants.StatusInProgress,
	},
	constants.StatusInProgress: {
		constants.TriggerComplete: constants.StatusCompleted,
	},
}

func CanFire(status constants.TaskStatus, trigger constants.TaskTrigger) bool {
	_, ok := transitions[status][trigger]
	return ok
}

// Fire returns the status reached from status by trigger, or
// ErrInvalidTransition when no such edge exists.
func Fire(status constants.TaskStatus, trigger constants.TaskTrigger) (constants.TaskStatus, error) {
	next, ok := transitions[status][trigger]
	if !ok {
		return status, fmt.Errorf("%w: cannot transition from %s using %s", ErrInvalidTransition, status, trigger)
	}
	return next, nil
}

// TriggerFor resolves the trigger that moves current to requested.
// changed is false when both are equal and no trigger is needed.
func TriggerFor(current, requested constants.TaskStatus) (trigger constants.TaskTrigger, changed bool, err error) {
	if current == requested {
		return "", false, nil
	}

	for t, next := range transitions[current] {
		if next == requested {
			return t, true, nil
		}
	}

	return "", false, fmt.Errorf("%w: cannot transition from %s to %s", ErrInvalidTransition, current, requested)
}
