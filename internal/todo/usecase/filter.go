package usecase

import (
	"strings"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/todo"
)

// filterTodos applies the completion/search/category triple. Pure and
// idempotent: the empty search term matches every todo.
func filterTodos(todos []model.Todo, input todo.ListInput) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if matchesFilter(t, input) {
			out = append(out, t)
		}
	}
	return out
}

func matchesFilter(t model.Todo, input todo.ListInput) bool {
	switch input.Filter {
	case todo.FilterPending:
		if t.Completed {
			return false
		}
	case todo.FilterCompleted:
		if !t.Completed {
			return false
		}
	}

	if input.Search != "" {
		needle := strings.ToLower(input.Search)
		title := strings.ToLower(t.Title)
		desc := strings.ToLower(t.Description)
		if !strings.Contains(title, needle) && !strings.Contains(desc, needle) {
			return false
		}
	}

	if input.Category != "" && input.Category != "all" && t.Category != input.Category {
		return false
	}

	return true
}
