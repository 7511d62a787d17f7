package repository

import (
	"context"

	"karobar-dashboard/internal/model"
)

// TaskRepository is the contract of the external task store. Note the
// deliberate absence of a delete method: the source behavior removes todos
// from the local projection only, and the gap is kept explicit here.
type TaskRepository interface {
	ListTasks(ctx context.Context) ([]model.Todo, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Todo, error)
	UpdateTask(ctx context.Context, id string, opt UpdateTaskOptions) (model.Todo, error)

	// UpdateTaskStatus patches only the status field. Callers get success or
	// failure, never the updated record — toggle mutates its projection
	// locally on success.
	UpdateTaskStatus(ctx context.Context, id, status string) error
}
