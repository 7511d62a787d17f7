package usecase

import (
	"context"
	"strings"
	"time"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/tier"
	"karobar-dashboard/internal/todo"
	repo "karobar-dashboard/internal/todo/repository"
	"karobar-dashboard/pkg/gcalendar"
)

// Create validates, checks the tier gate, and persists a new task in the
// store. Tier usage is incremented only after the store confirms the record.
func (uc *implUseCase) Create(ctx context.Context, input todo.CreateInput) (todo.CreateOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return todo.CreateOutput{}, todo.ErrEmptyTitle
	}

	if !uc.tiers.CanUseFeature(ctx, input.UserID, tier.FeatureTasks) {
		return todo.CreateOutput{}, todo.ErrTierLimit
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		Status:      model.TaskStatusPending,
		Priority:    priority,
		DueDate:     input.DueDate,
		Category:    input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return todo.CreateOutput{}, err
	}

	if err := uc.tiers.UpdateUsage(ctx, input.UserID, tier.FeatureTasks); err != nil {
		// The task exists upstream; a failed counter write is logged, not fatal.
		uc.l.Warnf(ctx, "uc.Create UpdateUsage: %v", err)
	}

	return todo.CreateOutput{
		Todo:         created,
		CalendarLink: uc.syncDueDate(ctx, created),
	}, nil
}

// syncDueDate creates a calendar event for the task's due date, best-effort.
func (uc *implUseCase) syncDueDate(ctx context.Context, t model.Todo) string {
	if uc.calendar == nil || t.DueDate == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   *t.DueDate,
		EndTime:     t.DueDate.Add(time.Hour),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create calendar sync failed for task %s: %v", t.ID, err)
		return ""
	}
	return event.HtmlLink
}
