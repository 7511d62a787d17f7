package usecase

import (
	"testing"

	"karobar-dashboard/internal/model"
)

func TestCategoryStatusBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		allocated float64
		spent     float64
		want      string
	}{
		{"zero spend", 1000, 0, model.CategoryStatusGood},
		{"exactly 80 percent", 1000, 800, model.CategoryStatusGood},
		{"just over 80 percent", 1000, 801, model.CategoryStatusWarning},
		{"exactly 100 percent", 1000, 1000, model.CategoryStatusWarning},
		{"just over 100 percent", 1000, 1001, model.CategoryStatusOver},
		{"zero allocation", 0, 500, model.CategoryStatusGood},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := model.BudgetCategory{Name: "x", Allocated: tc.allocated, Spent: tc.spent}
			if got := categoryStatus(c); got != tc.want {
				t.Errorf("categoryStatus(%v/%v) = %s, want %s", tc.spent, tc.allocated, got, tc.want)
			}
		})
	}
}

func TestOverspentCategoryScenario(t *testing.T) {
	// allocated 10000, spent 12000: over, bar capped at 100, remaining −2000.
	c := model.BudgetCategory{Name: "Marketing", Allocated: 10000, Spent: 12000}

	if got := categoryStatus(c); got != model.CategoryStatusOver {
		t.Errorf("status = %s, want over", got)
	}
	if got := categoryPercent(c); got != 100 {
		t.Errorf("display percent = %v, want capped 100", got)
	}

	b := model.Budget{TotalAmount: 10000, Categories: []model.BudgetCategory{c}}
	out := deriveMetrics(b)
	if out.Categories[0].Remaining != -2000 {
		t.Errorf("remaining = %v, want -2000", out.Categories[0].Remaining)
	}
	if out.Variance != -2000 {
		t.Errorf("variance = %v, want -2000", out.Variance)
	}
}

func TestTotalsAndVariance(t *testing.T) {
	b := model.Budget{
		TotalAmount: 50000,
		Categories: []model.BudgetCategory{
			{Name: "Rent", Allocated: 20000, Spent: 20000},
			{Name: "Salaries", Allocated: 25000, Spent: 18500},
			{Name: "Misc", Allocated: 5000, Spent: 1200.50},
		},
	}

	wantSpent := 20000 + 18500 + 1200.50
	if got := totalSpent(b); got != wantSpent {
		t.Errorf("totalSpent = %v, want %v", got, wantSpent)
	}
	if got := variance(b); got != 50000-wantSpent {
		t.Errorf("variance = %v, want %v", got, 50000-wantSpent)
	}
}

func TestDeriveMetricsEmptyCategories(t *testing.T) {
	out := deriveMetrics(model.Budget{TotalAmount: 1000})
	if out.TotalSpent != 0 || out.Variance != 1000 {
		t.Errorf("unexpected derived view: %+v", out)
	}
	if len(out.Categories) != 0 {
		t.Errorf("expected no category metrics, got %d", len(out.Categories))
	}
}
