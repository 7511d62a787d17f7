package todo

import (
	"time"

	"karobar-dashboard/internal/model"
)

// Completion filter values for List.
const (
	FilterAll       = "all"
	FilterPending   = "pending"
	FilterCompleted = "completed"
)

// --- UseCase Inputs ---

type ListInput struct {
	Filter   string // all | pending | completed ("" means all)
	Search   string // case-insensitive substring over title+description
	Category string // exact tag match ("" or "all" means all)
}

type CreateInput struct {
	UserID      string // tier scope
	Title       string
	Description string
	Priority    model.Priority
	DueDate     *time.Time
	Category    string
}

type UpdateInput struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Priority    model.Priority
	DueDate     *time.Time
	Category    string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Todos []model.Todo
	Total int
}

type CreateOutput struct {
	Todo         model.Todo
	CalendarLink string // deep link to the synced calendar event (may be empty)
}

type UpdateOutput struct {
	Todo model.Todo
}

type ToggleOutput struct {
	Todo model.Todo
}

// Stats is the aggregate view over all todos.
type StatsOutput struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
}
