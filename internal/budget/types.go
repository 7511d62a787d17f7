package budget

import (
	"time"

	"karobar-dashboard/internal/model"
)

// --- UseCase Inputs ---

type CategoryInput struct {
	Name      string
	Allocated float64
}

type CreateInput struct {
	Name        string
	TotalAmount float64
	Period      model.BudgetPeriod
	Categories  []CategoryInput
}

type AddCategoryInput struct {
	BudgetID  string
	Name      string
	Allocated float64
}

type UpdateCategoryInput struct {
	BudgetID  string
	Name      string // category to edit
	Allocated *float64
	Spent     *float64
}

// --- Derived views (never stored, always recomputed) ---

// CategoryMetrics is a category plus its derived spending status.
type CategoryMetrics struct {
	Name      string  `json:"name"`
	Allocated float64 `json:"allocated"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`  // allocated − spent, may be negative
	Percent   float64 `json:"percentage"` // display value, capped at 100
	Status    string  `json:"status"`     // good | warning | over
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Budget model.Budget
}

type ListOutput struct {
	Budgets []model.Budget
	Total   int
}

type DetailOutput struct {
	Budget     model.Budget
	TotalSpent float64
	Variance   float64
	Categories []CategoryMetrics
}

// Report is the exported budget report document.
type Report struct {
	Budget      model.Budget `json:"budget"`
	TotalSpent  float64      `json:"totalSpent"`
	Variance    float64      `json:"variance"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

type ExportOutput struct {
	Filename string
	Report   Report
}
