package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

const DefaultDueIn = 7 * 24 * time.Hour

// Task is both the persisted row and the JSON payload written to the cache.
type Task struct {
	ID          int64                `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string               `gorm:"size:100;not null" json:"title"`
	Description *string              `gorm:"size:500" json:"description"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	DueDate     time.Time            `gorm:"not null" json:"dueDate"`
}

func (Task) TableName() string {
	return "tasks"
}
