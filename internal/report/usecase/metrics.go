package usecase

import (
	"math"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/report"
)

// All metrics are pure functions of a project. Progress is deliberately NOT
// derived from completedTasks/tasks; both are surfaced even when they
// disagree.

// budgetUtilization is spent/budget × 100. A zero budget reads as 0.
func budgetUtilization(p model.Project) float64 {
	if p.Budget == 0 {
		return 0
	}
	return p.Spent / p.Budget * 100
}

// completionRate is completedTasks/tasks × 100. Zero tasks reads as 0.
func completionRate(p model.Project) float64 {
	if p.Tasks == 0 {
		return 0
	}
	return float64(p.CompletedTasks) / float64(p.Tasks) * 100
}

// durationDays is the whole-day span between start and end, order-independent
// and rounded up.
func durationDays(p model.Project) int {
	d := p.EndDate.Sub(p.StartDate).Hours() / 24
	return int(math.Ceil(math.Abs(d)))
}

func summarize(p model.Project) report.Summary {
	return report.Summary{
		BudgetUtilization: budgetUtilization(p),
		CompletionRate:    completionRate(p),
		DurationDays:      durationDays(p),
		RemainingBudget:   p.Budget - p.Spent,
		RemainingTasks:    p.Tasks - p.CompletedTasks,
	}
}
