package report

import (
	"time"

	"karobar-dashboard/internal/model"
)

// Summary holds the derived metrics of one project. Never stored; always
// recomputed from the project fields.
type Summary struct {
	BudgetUtilization float64 `json:"budgetUtilization"` // spent/budget × 100
	CompletionRate    float64 `json:"completionRate"`    // completedTasks/tasks × 100
	DurationDays      int     `json:"durationDays"`      // whole days, order-independent
	RemainingBudget   float64 `json:"remainingBudget"`
	RemainingTasks    int     `json:"remainingTasks"`
}

// --- UseCase Outputs ---

type ListOutput struct {
	Projects []model.Project
	Total    int
}

type DetailOutput struct {
	Project         model.Project
	Summary         Summary
	Recommendations []string
}

// Document is the exported project report.
type Document struct {
	Project         model.Project `json:"project"`
	ReportType      string        `json:"reportType"`
	DateRange       string        `json:"dateRange"`
	GeneratedAt     time.Time     `json:"generatedAt"`
	Summary         Summary       `json:"summary"`
	Recommendations []string      `json:"recommendations"`
}

type ExportOutput struct {
	Filename string
	Document Document
}
