package usecase

import (
	"context"
	"time"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/todo"
)

// Stats computes the aggregate counters over all store records.
func (uc *implUseCase) Stats(ctx context.Context) (todo.StatsOutput, error) {
	todos, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListTasks: %v", err)
		return todo.StatsOutput{}, err
	}
	return computeStats(todos, uc.now()), nil
}

// computeStats is pure. A todo is overdue when it is not completed and its
// due date is strictly before now.
func computeStats(todos []model.Todo, now time.Time) todo.StatsOutput {
	stats := todo.StatsOutput{Total: len(todos)}
	for _, t := range todos {
		if t.Completed {
			stats.Completed++
			continue
		}
		stats.Pending++
		if t.DueDate != nil && t.DueDate.Before(now) {
			stats.Overdue++
		}
	}
	return stats
}
