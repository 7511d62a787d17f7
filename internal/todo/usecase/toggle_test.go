package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/todo"
)

func TestToggle(t *testing.T) {
	ctx := context.Background()
	frozen := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	newUC := func(repo *mockTaskRepo) *implUseCase {
		uc := New(&mockLogger{}, repo, &mockTierManager{allow: true}, nil, "", "")
		uc.now = func() time.Time { return frozen }
		return uc
	}

	t.Run("pending to completed", func(t *testing.T) {
		repo := &mockTaskRepo{tasks: []model.Todo{
			{ID: "t-1", Title: "Invoice", Completed: false, UpdatedAt: frozen.Add(-time.Hour)},
		}}
		uc := newUC(repo)

		out, err := uc.Toggle(ctx, "t-1")
		if err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		if !out.Todo.Completed {
			t.Error("flag must be flipped")
		}
		if !out.Todo.UpdatedAt.Equal(frozen) {
			t.Errorf("UpdatedAt must be refreshed locally, got %v", out.Todo.UpdatedAt)
		}
		// Only the derived status string travels upstream.
		if len(repo.statusCalls) != 1 || repo.statusCalls[0] != model.TaskStatusCompleted {
			t.Errorf("expected single status patch 'completed', got %v", repo.statusCalls)
		}
		if repo.updateCalls != 0 {
			t.Error("toggle must not send the full record")
		}
	})

	t.Run("completed back to pending", func(t *testing.T) {
		repo := &mockTaskRepo{tasks: []model.Todo{{ID: "t-1", Completed: true}}}
		uc := newUC(repo)

		out, err := uc.Toggle(ctx, "t-1")
		if err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		if out.Todo.Completed {
			t.Error("flag must be flipped back")
		}
		if repo.statusCalls[0] != model.TaskStatusPending {
			t.Errorf("expected status patch 'pending', got %v", repo.statusCalls)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		uc := newUC(&mockTaskRepo{})
		if _, err := uc.Toggle(ctx, "nope"); !errors.Is(err, todo.ErrTodoNotFound) {
			t.Errorf("expected ErrTodoNotFound, got %v", err)
		}
	})

	t.Run("status patch failure surfaces the error", func(t *testing.T) {
		repo := &failingStatusRepo{mockTaskRepo: &mockTaskRepo{tasks: []model.Todo{{ID: "t-1"}}}}
		uc := New(&mockLogger{}, repo, &mockTierManager{allow: true}, nil, "", "")
		uc.now = func() time.Time { return frozen }

		if _, err := uc.Toggle(ctx, "t-1"); err == nil {
			t.Fatal("expected error from status patch")
		}
	})
}

// failingStatusRepo lists fine but rejects status patches.
type failingStatusRepo struct {
	*mockTaskRepo
}

func (f *failingStatusRepo) UpdateTaskStatus(ctx context.Context, id, status string) error {
	return errors.New("store down")
}
