package repository

import (
	"time"

	"karobar-dashboard/internal/model"
)

// CreateTaskOptions holds the fields sent to the store for a new task.
type CreateTaskOptions struct {
	Title       string
	Description string
	Status      string
	Priority    model.Priority
	DueDate     *time.Time
	Category    string
}

// UpdateTaskOptions holds the full edited record sent to the store.
type UpdateTaskOptions struct {
	Title       string
	Description string
	Status      string
	Priority    model.Priority
	DueDate     *time.Time
	Category    string
}
