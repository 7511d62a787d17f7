package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"karobar-dashboard/internal/todo"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("whitespace-only title rejected before any store call", func(t *testing.T) {
		repo := &mockTaskRepo{}
		tiers := &mockTierManager{allow: true}
		uc := New(&mockLogger{}, repo, tiers, nil, "", "")

		_, err := uc.Create(ctx, todo.CreateInput{UserID: "u1", Title: "  "})
		if !errors.Is(err, todo.ErrEmptyTitle) {
			t.Fatalf("expected ErrEmptyTitle, got %v", err)
		}
		if repo.createCalls != 0 {
			t.Error("store must not be called for invalid input")
		}
		if tiers.usageCalls != 0 {
			t.Error("tier usage must not change for invalid input")
		}
	})

	t.Run("tier gate denial", func(t *testing.T) {
		repo := &mockTaskRepo{}
		tiers := &mockTierManager{allow: false}
		uc := New(&mockLogger{}, repo, tiers, nil, "", "")

		_, err := uc.Create(ctx, todo.CreateInput{UserID: "u1", Title: "Pay rent"})
		if !errors.Is(err, todo.ErrTierLimit) {
			t.Fatalf("expected ErrTierLimit, got %v", err)
		}
		if repo.createCalls != 0 {
			t.Error("store must not be called when the tier gate denies")
		}
	})

	t.Run("success increments tier usage", func(t *testing.T) {
		repo := &mockTaskRepo{}
		tiers := &mockTierManager{allow: true}
		uc := New(&mockLogger{}, repo, tiers, nil, "", "")

		out, err := uc.Create(ctx, todo.CreateInput{UserID: "u1", Title: "Pay rent", Category: "finance"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Todo.ID != "t-new" || out.Todo.Completed {
			t.Errorf("unexpected todo: %+v", out.Todo)
		}
		if tiers.usageCalls != 1 {
			t.Errorf("expected 1 usage update, got %d", tiers.usageCalls)
		}
	})

	t.Run("store failure leaves tier usage untouched", func(t *testing.T) {
		repo := &mockTaskRepo{fail: true}
		tiers := &mockTierManager{allow: true}
		uc := New(&mockLogger{}, repo, tiers, nil, "", "")

		if _, err := uc.Create(ctx, todo.CreateInput{UserID: "u1", Title: "Pay rent"}); err == nil {
			t.Fatal("expected store error")
		}
		if tiers.usageCalls != 0 {
			t.Error("tier usage must not change when the store fails")
		}
	})

	t.Run("due date triggers calendar sync", func(t *testing.T) {
		repo := &mockTaskRepo{}
		cal := &mockCalendarClient{}
		uc := New(&mockLogger{}, repo, &mockTierManager{allow: true}, cal, "primary", "Asia/Karachi")

		due := time.Now().Add(48 * time.Hour)
		out, err := uc.Create(ctx, todo.CreateInput{UserID: "u1", Title: "Quarterly review", DueDate: &due})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if cal.calls != 1 {
			t.Errorf("expected 1 calendar event, got %d", cal.calls)
		}
		if out.CalendarLink == "" {
			t.Error("expected a calendar link")
		}
	})

	t.Run("calendar failure does not fail creation", func(t *testing.T) {
		repo := &mockTaskRepo{}
		cal := &mockCalendarClient{fail: true}
		uc := New(&mockLogger{}, repo, &mockTierManager{allow: true}, cal, "primary", "Asia/Karachi")

		due := time.Now().Add(time.Hour)
		out, err := uc.Create(ctx, todo.CreateInput{UserID: "u1", Title: "Call bank", DueDate: &due})
		if err != nil {
			t.Fatalf("Create must succeed despite calendar failure: %v", err)
		}
		if out.CalendarLink != "" {
			t.Error("failed sync must yield an empty link")
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty title rejected", func(t *testing.T) {
		repo := &mockTaskRepo{}
		uc := New(&mockLogger{}, repo, &mockTierManager{allow: true}, nil, "", "")

		_, err := uc.Update(ctx, todo.UpdateInput{ID: "t-1", Title: ""})
		if !errors.Is(err, todo.ErrEmptyTitle) {
			t.Fatalf("expected ErrEmptyTitle, got %v", err)
		}
		if repo.updateCalls != 0 {
			t.Error("store must not be called for invalid input")
		}
	})

	t.Run("full record sent, store version returned", func(t *testing.T) {
		repo := &mockTaskRepo{}
		uc := New(&mockLogger{}, repo, &mockTierManager{allow: true}, nil, "", "")

		out, err := uc.Update(ctx, todo.UpdateInput{ID: "t-1", Title: "Renamed", Completed: true})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if out.Todo.Title != "Renamed" || !out.Todo.Completed {
			t.Errorf("unexpected todo: %+v", out.Todo)
		}
		if repo.updateCalls != 1 {
			t.Errorf("expected 1 update call, got %d", repo.updateCalls)
		}
	})
}
