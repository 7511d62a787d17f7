package usecase

import (
	"reflect"
	"testing"
	"time"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/todo"
)

func sampleTodos() []model.Todo {
	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	return []model.Todo{
		{ID: "1", Title: "Pay electricity bill", Description: "office utilities", Completed: false, Category: "finance", DueDate: &due},
		{ID: "2", Title: "Team standup notes", Description: "weekly SUMMARY", Completed: true, Category: "work"},
		{ID: "3", Title: "Renew hosting", Description: "", Completed: false, Category: "finance"},
	}
}

func TestFilterTodos(t *testing.T) {
	todos := sampleTodos()

	cases := []struct {
		name  string
		input todo.ListInput
		want  []string // expected ids, in order
	}{
		{"no filters matches all", todo.ListInput{}, []string{"1", "2", "3"}},
		{"all filter matches all", todo.ListInput{Filter: todo.FilterAll}, []string{"1", "2", "3"}},
		{"pending only", todo.ListInput{Filter: todo.FilterPending}, []string{"1", "3"}},
		{"completed only", todo.ListInput{Filter: todo.FilterCompleted}, []string{"2"}},
		{"search matches title case-insensitively", todo.ListInput{Search: "PAY"}, []string{"1"}},
		{"search matches description case-insensitively", todo.ListInput{Search: "summary"}, []string{"2"}},
		{"empty search matches everything", todo.ListInput{Search: ""}, []string{"1", "2", "3"}},
		{"category exact match", todo.ListInput{Category: "finance"}, []string{"1", "3"}},
		{"category all matches everything", todo.ListInput{Category: "all"}, []string{"1", "2", "3"}},
		{"triple conjunction", todo.ListInput{Filter: todo.FilterPending, Search: "renew", Category: "finance"}, []string{"3"}},
		{"no match", todo.ListInput{Search: "does-not-exist"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := filterTodos(todos, tc.input)
			ids := make([]string, 0, len(got))
			for _, td := range got {
				ids = append(ids, td.ID)
			}
			if !reflect.DeepEqual(ids, tc.want) {
				t.Errorf("got %v, want %v", ids, tc.want)
			}
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	todos := sampleTodos()
	input := todo.ListInput{Filter: todo.FilterPending, Search: "e", Category: "finance"}

	once := filterTodos(todos, input)
	twice := filterTodos(once, input)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("applying the same filter twice changed the result: %v vs %v", once, twice)
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	todos := []model.Todo{
		{ID: "1", Completed: false, DueDate: &past},   // overdue
		{ID: "2", Completed: true, DueDate: &past},    // done, never overdue
		{ID: "3", Completed: false, DueDate: &future}, // pending, not yet due
		{ID: "4", Completed: false},                   // pending, no due date
	}

	stats := computeStats(todos, now)

	if stats.Total != 4 {
		t.Errorf("total: got %d, want 4", stats.Total)
	}
	if stats.Completed != 1 {
		t.Errorf("completed: got %d, want 1", stats.Completed)
	}
	if stats.Pending != 3 {
		t.Errorf("pending: got %d, want 3", stats.Pending)
	}
	if stats.Overdue != 1 {
		t.Errorf("overdue: got %d, want 1", stats.Overdue)
	}
}

func TestComputeStatsDueNowIsNotOverdue(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	todos := []model.Todo{{ID: "1", Completed: false, DueDate: &now}}

	if got := computeStats(todos, now).Overdue; got != 0 {
		t.Errorf("due exactly now must not count as overdue, got %d", got)
	}
}
