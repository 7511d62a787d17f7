package usecase

import (
	"context"
	"errors"

	"karobar-dashboard/internal/model"
	repo "karobar-dashboard/internal/todo/repository"
	"karobar-dashboard/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockTaskRepo records which store calls were made.
type mockTaskRepo struct {
	tasks       []model.Todo
	fail        bool
	createCalls int
	updateCalls int
	statusCalls []string // statuses sent via UpdateTaskStatus
}

func (m *mockTaskRepo) ListTasks(ctx context.Context) ([]model.Todo, error) {
	if m.fail {
		return nil, errors.New("store down")
	}
	return m.tasks, nil
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Todo, error) {
	m.createCalls++
	if m.fail {
		return model.Todo{}, errors.New("store down")
	}
	return model.Todo{
		ID:          "t-new",
		Title:       opt.Title,
		Description: opt.Description,
		Completed:   opt.Status == model.TaskStatusCompleted,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		Category:    opt.Category,
	}, nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, id string, opt repo.UpdateTaskOptions) (model.Todo, error) {
	m.updateCalls++
	if m.fail {
		return model.Todo{}, errors.New("store down")
	}
	return model.Todo{
		ID:          id,
		Title:       opt.Title,
		Description: opt.Description,
		Completed:   opt.Status == model.TaskStatusCompleted,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		Category:    opt.Category,
	}, nil
}

func (m *mockTaskRepo) UpdateTaskStatus(ctx context.Context, id, status string) error {
	if m.fail {
		return errors.New("store down")
	}
	m.statusCalls = append(m.statusCalls, status)
	return nil
}

// mockTierManager gates on a single bool and counts usage updates.
type mockTierManager struct {
	allow      bool
	usageCalls int
	setCalls   []model.Tier
}

func (m *mockTierManager) CanUseFeature(ctx context.Context, userID, feature string) bool {
	return m.allow
}

func (m *mockTierManager) UpdateUsage(ctx context.Context, userID, feature string) error {
	m.usageCalls++
	return nil
}

func (m *mockTierManager) SetTier(ctx context.Context, userID string, t model.Tier) error {
	m.setCalls = append(m.setCalls, t)
	return nil
}

func (m *mockTierManager) Current(ctx context.Context, userID string) (model.TierState, error) {
	return model.TierState{Tier: model.TierStarter, Usage: map[string]int{}}, nil
}

type mockCalendarClient struct {
	fail  bool
	calls int
}

func (m *mockCalendarClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.calls++
	if m.fail {
		return nil, errors.New("calendar error")
	}
	return &gcalendar.Event{HtmlLink: "http://cal.link/e1"}, nil
}
