package usecase

import (
	"context"
	"strings"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/todo"
	repo "karobar-dashboard/internal/todo/repository"
)

// Update sends the full edited record to the store and returns the store's
// version of it. On store failure nothing is mutated.
func (uc *implUseCase) Update(ctx context.Context, input todo.UpdateInput) (todo.UpdateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return todo.UpdateOutput{}, todo.ErrEmptyTitle
	}

	status := model.TaskStatusPending
	if input.Completed {
		status = model.TaskStatusCompleted
	}

	updated, err := uc.repo.UpdateTask(ctx, input.ID, repo.UpdateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Category:    input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return todo.UpdateOutput{}, err
	}

	return todo.UpdateOutput{Todo: updated}, nil
}
