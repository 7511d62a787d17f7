package usecase

import (
	"context"

	"karobar-dashboard/internal/todo"
)

// List fetches all records from the task store and filters them in memory.
func (uc *implUseCase) List(ctx context.Context, input todo.ListInput) (todo.ListOutput, error) {
	todos, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return todo.ListOutput{}, err
	}

	filtered := filterTodos(todos, input)
	return todo.ListOutput{
		Todos: filtered,
		Total: len(filtered),
	}, nil
}
