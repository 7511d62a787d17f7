package taskstore

import (
	"context"
	"time"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/todo/repository"
	pkgLog "karobar-dashboard/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a task repository backed by the external task store.
func New(client *Client, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Todo, error) {
	records, err := r.client.GetTasks(ctx)
	if err != nil {
		r.l.Errorf(ctx, "taskstore repository: failed to list tasks: %v", err)
		return nil, repository.ErrFailedToList
	}

	todos := make([]model.Todo, 0, len(records))
	for i := range records {
		todos = append(todos, r.recordToTodo(&records[i]))
	}
	return todos, nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Todo, error) {
	req := CreateTaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
		Status:      opt.Status,
		Priority:    string(opt.Priority),
		Category:    opt.Category,
	}
	if opt.DueDate != nil {
		req.DueDate = opt.DueDate.Format(time.RFC3339)
	}

	record, err := r.client.CreateTask(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "taskstore repository: failed to create task: %v", err)
		return model.Todo{}, repository.ErrFailedToCreate
	}
	return r.recordToTodo(record), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Todo, error) {
	priority := string(opt.Priority)
	req := UpdateTaskRequest{
		Title:       &opt.Title,
		Description: &opt.Description,
		Status:      &opt.Status,
		Priority:    &priority,
		Category:    &opt.Category,
	}
	if opt.DueDate != nil {
		due := opt.DueDate.Format(time.RFC3339)
		req.DueDate = &due
	}

	record, err := r.client.UpdateTask(ctx, id, req)
	if err != nil {
		r.l.Errorf(ctx, "taskstore repository: failed to update task %s: %v", id, err)
		return model.Todo{}, repository.ErrFailedToUpdate
	}
	return r.recordToTodo(record), nil
}

func (r *implRepository) UpdateTaskStatus(ctx context.Context, id, status string) error {
	// Only the derived status field travels upstream; the response record is
	// discarded on purpose.
	if _, err := r.client.UpdateTask(ctx, id, UpdateTaskRequest{Status: &status}); err != nil {
		r.l.Errorf(ctx, "taskstore repository: failed to patch status of %s: %v", id, err)
		return repository.ErrFailedToUpdate
	}
	return nil
}

// recordToTodo converts a task store record to the internal model.Todo,
// deriving Completed from the status string.
func (r *implRepository) recordToTodo(rec *TaskRecord) model.Todo {
	todo := model.Todo{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Completed:   rec.Status == model.TaskStatusCompleted,
		Priority:    model.Priority(rec.Priority),
		Category:    rec.Category,
		CreatedAt:   parseTime(rec.CreatedAt),
		UpdatedAt:   parseTime(rec.UpdatedAt),
	}
	if rec.DueDate != "" {
		if due := parseTime(rec.DueDate); !due.IsZero() {
			todo.DueDate = &due
		}
	}
	return todo
}

// parseTime accepts RFC3339 or a bare calendar date; zero time otherwise.
func parseTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
