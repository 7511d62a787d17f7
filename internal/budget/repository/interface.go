package repository

import (
	"context"

	"karobar-dashboard/internal/model"
)

// BudgetRepository defines all data access methods for the Budget entity.
// The default implementation is in-memory; a postgres implementation can be
// selected by config without touching calling code.
type BudgetRepository interface {
	CreateBudget(ctx context.Context, b model.Budget) (model.Budget, error)
	GetOneBudget(ctx context.Context, id string) (model.Budget, error)
	ListBudgets(ctx context.Context) ([]model.Budget, error)
	UpdateBudget(ctx context.Context, b model.Budget) (model.Budget, error)
}
