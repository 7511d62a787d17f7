package usecase

import (
	"context"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/todo"
)

// Toggle flips the completion flag of one task. Only the derived status
// string travels to the store; on success the projection is mutated locally
// (flag flipped, UpdatedAt refreshed) without reading the store's response.
func (uc *implUseCase) Toggle(ctx context.Context, id string) (todo.ToggleOutput, error) {
	todos, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle ListTasks: %v", err)
		return todo.ToggleOutput{}, err
	}

	var current *model.Todo
	for i := range todos {
		if todos[i].ID == id {
			current = &todos[i]
			break
		}
	}
	if current == nil {
		return todo.ToggleOutput{}, todo.ErrTodoNotFound
	}

	flipped := *current
	flipped.Completed = !current.Completed

	if err := uc.repo.UpdateTaskStatus(ctx, id, flipped.Status()); err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTaskStatus: %v", err)
		return todo.ToggleOutput{}, err
	}

	flipped.UpdatedAt = uc.now()
	return todo.ToggleOutput{Todo: flipped}, nil
}
