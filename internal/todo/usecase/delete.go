package usecase

import (
	"context"

	"karobar-dashboard/internal/todo"
)

// Delete removes the task from the caller's projection only. No store call
// is made: the upstream record survives. The repository contract has no
// delete method, keeping that gap visible.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return todo.ErrTodoNotFound
	}
	uc.l.Infof(ctx, "uc.Delete: task %s removed from projection, store record kept", id)
	return nil
}
