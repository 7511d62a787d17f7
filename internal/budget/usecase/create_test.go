package usecase

import (
	"context"
	"testing"
	"time"

	"karobar-dashboard/internal/budget"
	"karobar-dashboard/internal/budget/repository/memory"
	"karobar-dashboard/internal/model"
)

func newTestUseCase() *implUseCase {
	uc := New(memory.New(), &mockLogger{})
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }
	return uc
}

func TestCreateBudget(t *testing.T) {
	uc := newTestUseCase()

	out, err := uc.Create(context.Background(), budget.CreateInput{
		Name:        "Q1 Office Budget",
		TotalAmount: 50000,
		Categories: []budget.CategoryInput{
			{Name: "Rent", Allocated: 20000},
			{Name: "Supplies", Allocated: 5000},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	b := out.Budget
	if b.ID == "" {
		t.Error("expected a generated id")
	}
	if b.Status != "active" {
		t.Errorf("status = %q, want active", b.Status)
	}
	if b.Period != model.PeriodMonthly {
		t.Errorf("period = %q, want monthly default", b.Period)
	}
	for _, c := range b.Categories {
		if c.Spent != 0 {
			t.Errorf("category %s spent = %v, want 0", c.Name, c.Spent)
		}
	}

	detail, err := uc.Detail(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("Detail after Create: %v", err)
	}
	if detail.TotalSpent != 0 || detail.Variance != 50000 {
		t.Errorf("fresh budget metrics: spent=%v variance=%v", detail.TotalSpent, detail.Variance)
	}
}

func TestCreateBudgetValidation(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	cases := []struct {
		name  string
		input budget.CreateInput
		want  error
	}{
		{
			"blank name",
			budget.CreateInput{Name: "  ", TotalAmount: 100, Categories: []budget.CategoryInput{{Name: "a"}}},
			budget.ErrEmptyName,
		},
		{
			"zero amount",
			budget.CreateInput{Name: "x", TotalAmount: 0, Categories: []budget.CategoryInput{{Name: "a"}}},
			budget.ErrInvalidAmount,
		},
		{
			"no categories",
			budget.CreateInput{Name: "x", TotalAmount: 100},
			budget.ErrNoCategories,
		},
		{
			"duplicate category",
			budget.CreateInput{Name: "x", TotalAmount: 100, Categories: []budget.CategoryInput{{Name: "a"}, {Name: "a"}}},
			budget.ErrDuplicateCategory,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Create(ctx, tc.input); err != tc.want {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCategoryLifecycle(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	out, err := uc.Create(ctx, budget.CreateInput{
		Name:        "Ops",
		TotalAmount: 10000,
		Categories:  []budget.CategoryInput{{Name: "Utilities", Allocated: 4000}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id := out.Budget.ID

	detail, err := uc.AddCategory(ctx, budget.AddCategoryInput{BudgetID: id, Name: "Transport", Allocated: 3000})
	if err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	if len(detail.Categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(detail.Categories))
	}

	if _, err := uc.AddCategory(ctx, budget.AddCategoryInput{BudgetID: id, Name: "Transport"}); err != budget.ErrDuplicateCategory {
		t.Errorf("duplicate add err = %v, want ErrDuplicateCategory", err)
	}

	spent := 3500.0
	detail, err = uc.UpdateCategory(ctx, budget.UpdateCategoryInput{BudgetID: id, Name: "Utilities", Spent: &spent})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if detail.Categories[0].Status != model.CategoryStatusWarning {
		t.Errorf("status after 3500/4000 = %s, want warning", detail.Categories[0].Status)
	}
	if detail.TotalSpent != 3500 || detail.Variance != 6500 {
		t.Errorf("totals after update: spent=%v variance=%v", detail.TotalSpent, detail.Variance)
	}

	if _, err := uc.UpdateCategory(ctx, budget.UpdateCategoryInput{BudgetID: id, Name: "Nope"}); err != budget.ErrCategoryNotFound {
		t.Errorf("unknown category err = %v, want ErrCategoryNotFound", err)
	}

	detail, err = uc.DeleteCategory(ctx, id, "Utilities")
	if err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if len(detail.Categories) != 1 || detail.Categories[0].Name != "Transport" {
		t.Errorf("unexpected categories after delete: %+v", detail.Categories)
	}
	if detail.TotalSpent != 0 {
		t.Errorf("total spent after delete = %v, want 0", detail.TotalSpent)
	}
}

func TestDetailNotFound(t *testing.T) {
	uc := newTestUseCase()
	if _, err := uc.Detail(context.Background(), "missing"); err != budget.ErrBudgetNotFound {
		t.Errorf("err = %v, want ErrBudgetNotFound", err)
	}
}
