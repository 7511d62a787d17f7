package model

import "time"

// Priority is the todo priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task store status values. The store keeps a status string; the Todo
// projection keeps a Completed flag. Both are carried and kept in sync on
// every mutation.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Todo is the in-memory projection of a task store record.
type Todo struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	DueDate     *time.Time
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Status derives the store status string from the Completed flag.
func (t Todo) Status() string {
	if t.Completed {
		return TaskStatusCompleted
	}
	return TaskStatusPending
}
