package usecase

import (
	"karobar-dashboard/internal/budget"
	"karobar-dashboard/internal/model"
)

// Derived metrics are never stored: every read recomputes them from the
// budget's categories.

// totalSpent is the sum of category spend.
func totalSpent(b model.Budget) float64 {
	var sum float64
	for _, c := range b.Categories {
		sum += c.Spent
	}
	return sum
}

// variance is totalAmount − totalSpent: positive means remaining, negative
// means over budget.
func variance(b model.Budget) float64 {
	return b.TotalAmount - totalSpent(b)
}

// categoryStatus classifies spend/allocated: over iff ratio > 1.0,
// warning iff 0.8 < ratio ≤ 1.0, good otherwise. A zero allocation is
// treated as no spend pressure.
func categoryStatus(c model.BudgetCategory) string {
	if c.Allocated == 0 {
		return model.CategoryStatusGood
	}
	ratio := c.Spent / c.Allocated
	switch {
	case ratio > 1.0:
		return model.CategoryStatusOver
	case ratio > 0.8:
		return model.CategoryStatusWarning
	default:
		return model.CategoryStatusGood
	}
}

// categoryPercent is the display percentage, capped at 100 for progress bars.
func categoryPercent(c model.BudgetCategory) float64 {
	if c.Allocated == 0 {
		return 0
	}
	pct := c.Spent / c.Allocated * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// deriveMetrics builds the full derived view for one budget.
func deriveMetrics(b model.Budget) budget.DetailOutput {
	cats := make([]budget.CategoryMetrics, len(b.Categories))
	for i, c := range b.Categories {
		cats[i] = budget.CategoryMetrics{
			Name:      c.Name,
			Allocated: c.Allocated,
			Spent:     c.Spent,
			Remaining: c.Allocated - c.Spent,
			Percent:   categoryPercent(c),
			Status:    categoryStatus(c),
		}
	}
	return budget.DetailOutput{
		Budget:     b,
		TotalSpent: totalSpent(b),
		Variance:   variance(b),
		Categories: cats,
	}
}
