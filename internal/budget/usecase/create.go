package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"karobar-dashboard/internal/budget"
	"karobar-dashboard/internal/model"
)

// Create validates the submission and persists a fresh budget: generated id,
// every category starting at zero spend, active status.
func (uc *implUseCase) Create(ctx context.Context, input budget.CreateInput) (budget.CreateOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return budget.CreateOutput{}, budget.ErrEmptyName
	}
	if input.TotalAmount <= 0 {
		return budget.CreateOutput{}, budget.ErrInvalidAmount
	}
	if len(input.Categories) == 0 {
		return budget.CreateOutput{}, budget.ErrNoCategories
	}

	seen := make(map[string]bool, len(input.Categories))
	categories := make([]model.BudgetCategory, 0, len(input.Categories))
	for _, c := range input.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return budget.CreateOutput{}, budget.ErrEmptyName
		}
		if seen[c.Name] {
			return budget.CreateOutput{}, budget.ErrDuplicateCategory
		}
		seen[c.Name] = true
		categories = append(categories, model.BudgetCategory{
			Name:      c.Name,
			Allocated: c.Allocated,
			Spent:     0,
		})
	}

	now := uc.now()
	period := input.Period
	if period == "" {
		period = model.PeriodMonthly
	}

	b := model.Budget{
		ID:          uuid.New().String(),
		Name:        input.Name,
		TotalAmount: input.TotalAmount,
		Period:      period,
		Status:      "active",
		Categories:  categories,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := uc.repo.CreateBudget(ctx, b)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateBudget: %v", err)
		return budget.CreateOutput{}, err
	}

	return budget.CreateOutput{Budget: created}, nil
}
