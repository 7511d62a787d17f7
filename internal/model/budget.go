package model

import "time"

// BudgetPeriod is the planning horizon of a budget.
type BudgetPeriod string

const (
	PeriodMonthly   BudgetPeriod = "monthly"
	PeriodQuarterly BudgetPeriod = "quarterly"
	PeriodYearly    BudgetPeriod = "yearly"
)

// Category spending status values, derived from spent/allocated.
const (
	CategoryStatusGood    = "good"
	CategoryStatusWarning = "warning"
	CategoryStatusOver    = "over"
)

// BudgetCategory is a named sub-allocation of a budget's total amount.
// Spent and Allocated are tracked independently: over-spend is a detected
// condition, never an error.
type BudgetCategory struct {
	Name      string  `json:"name"`
	Allocated float64 `json:"allocated"`
	Spent     float64 `json:"spent"`
}

// Budget is a spending plan with named categories.
type Budget struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	TotalAmount float64          `json:"totalAmount"`
	Period      BudgetPeriod     `json:"period"`
	Status      string           `json:"status"`
	Categories  []BudgetCategory `json:"categories"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
