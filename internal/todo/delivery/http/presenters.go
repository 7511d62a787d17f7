package http

import (
	"time"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/todo"
)

// --- Request DTOs ---

type listReq struct {
	Filter   string `form:"filter"   binding:"omitempty,oneof=all pending completed"`
	Search   string `form:"search"`
	Category string `form:"category"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() todo.ListInput {
	return todo.ListInput{
		Filter:   r.Filter,
		Search:   r.Search,
		Category: r.Category,
	}
}

// ---

type createReq struct {
	Title       string     `json:"title"`
	Description string     `json:"description" binding:"max=1000"`
	Priority    string     `json:"priority"    binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	Category    string     `json:"category"    binding:"max=100"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput(userID string) todo.CreateInput {
	return todo.CreateInput{
		UserID:      userID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		DueDate:     r.DueDate,
		Category:    r.Category,
	}
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       string     `json:"title"`
	Description string     `json:"description" binding:"max=1000"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"    binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	Category    string     `json:"category"    binding:"max=100"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() todo.UpdateInput {
	return todo.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Priority:    model.Priority(r.Priority),
		DueDate:     r.DueDate,
		Category:    r.Category,
	}
}

// --- Response DTOs ---

type todoResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTodoResp(t model.Todo) todoResp {
	return todoResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Status:      t.Status(),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		Category:    t.Category,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type listResp struct {
	Todos []todoResp `json:"todos"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out todo.ListOutput) listResp {
	todos := make([]todoResp, len(out.Todos))
	for i, t := range out.Todos {
		todos[i] = newTodoResp(t)
	}
	return listResp{Todos: todos, Total: out.Total}
}

type createResp struct {
	Todo         todoResp `json:"todo"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func (h *handler) newCreateResp(out todo.CreateOutput) createResp {
	return createResp{Todo: newTodoResp(out.Todo), CalendarLink: out.CalendarLink}
}

type updateResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newUpdateResp(out todo.UpdateOutput) updateResp {
	return updateResp{Todo: newTodoResp(out.Todo)}
}

type toggleResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newToggleResp(out todo.ToggleOutput) toggleResp {
	return toggleResp{Todo: newTodoResp(out.Todo)}
}

type deleteResp struct {
	ID string `json:"id"`
}

type statsResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

func (h *handler) newStatsResp(out todo.StatsOutput) statsResp {
	return statsResp{
		Total:     out.Total,
		Completed: out.Completed,
		Pending:   out.Pending,
		Overdue:   out.Overdue,
	}
}
