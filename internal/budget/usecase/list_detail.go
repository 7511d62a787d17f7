package usecase

import (
	"context"

	"karobar-dashboard/internal/budget"
)

// List returns all budgets in creation order.
func (uc *implUseCase) List(ctx context.Context) (budget.ListOutput, error) {
	budgets, err := uc.repo.ListBudgets(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListBudgets: %v", err)
		return budget.ListOutput{}, err
	}
	return budget.ListOutput{Budgets: budgets, Total: len(budgets)}, nil
}

// Detail returns one budget with all derived metrics recomputed.
func (uc *implUseCase) Detail(ctx context.Context, id string) (budget.DetailOutput, error) {
	b, err := uc.repo.GetOneBudget(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneBudget: %v", err)
		return budget.DetailOutput{}, err
	}
	if b.ID == "" {
		return budget.DetailOutput{}, budget.ErrBudgetNotFound
	}
	return deriveMetrics(b), nil
}
