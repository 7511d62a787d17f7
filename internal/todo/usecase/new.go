package usecase

import (
	"context"
	"time"

	"karobar-dashboard/internal/tier"
	"karobar-dashboard/internal/todo/repository"
	"karobar-dashboard/pkg/gcalendar"
	pkgLog "karobar-dashboard/pkg/log"
)

// CalendarClient is the slice of the calendar API the todo domain needs.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.TaskRepository
	tiers      tier.Manager
	calendar   CalendarClient // nil when due-date sync is not configured
	calendarID string
	timezone   string
	now        func() time.Time
}

// New creates a new todo UseCase instance.
func New(l pkgLog.Logger, repo repository.TaskRepository, tiers tier.Manager, calendar CalendarClient, calendarID, timezone string) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		tiers:      tiers,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		now:        time.Now,
	}
}
