package usecase

import (
	"context"
	"strings"

	"karobar-dashboard/internal/budget"
	"karobar-dashboard/internal/model"
)

// AddCategory appends a new zero-spend category to an existing budget.
func (uc *implUseCase) AddCategory(ctx context.Context, input budget.AddCategoryInput) (budget.DetailOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return budget.DetailOutput{}, budget.ErrEmptyName
	}

	b, err := uc.loadBudget(ctx, input.BudgetID)
	if err != nil {
		return budget.DetailOutput{}, err
	}

	for _, c := range b.Categories {
		if c.Name == input.Name {
			return budget.DetailOutput{}, budget.ErrDuplicateCategory
		}
	}

	b.Categories = append(b.Categories, model.BudgetCategory{
		Name:      input.Name,
		Allocated: input.Allocated,
		Spent:     0,
	})
	return uc.saveBudget(ctx, b)
}

// UpdateCategory edits allocation and/or spend of one category. Over-spend
// is accepted: it is a detected condition, not a validation error.
func (uc *implUseCase) UpdateCategory(ctx context.Context, input budget.UpdateCategoryInput) (budget.DetailOutput, error) {
	b, err := uc.loadBudget(ctx, input.BudgetID)
	if err != nil {
		return budget.DetailOutput{}, err
	}

	found := false
	for i := range b.Categories {
		if b.Categories[i].Name == input.Name {
			if input.Allocated != nil {
				b.Categories[i].Allocated = *input.Allocated
			}
			if input.Spent != nil {
				b.Categories[i].Spent = *input.Spent
			}
			found = true
			break
		}
	}
	if !found {
		return budget.DetailOutput{}, budget.ErrCategoryNotFound
	}

	return uc.saveBudget(ctx, b)
}

// DeleteCategory removes one category from the budget.
func (uc *implUseCase) DeleteCategory(ctx context.Context, budgetID, name string) (budget.DetailOutput, error) {
	b, err := uc.loadBudget(ctx, budgetID)
	if err != nil {
		return budget.DetailOutput{}, err
	}

	idx := -1
	for i := range b.Categories {
		if b.Categories[i].Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return budget.DetailOutput{}, budget.ErrCategoryNotFound
	}

	b.Categories = append(b.Categories[:idx], b.Categories[idx+1:]...)
	return uc.saveBudget(ctx, b)
}

func (uc *implUseCase) loadBudget(ctx context.Context, id string) (model.Budget, error) {
	b, err := uc.repo.GetOneBudget(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc budget load: %v", err)
		return model.Budget{}, err
	}
	if b.ID == "" {
		return model.Budget{}, budget.ErrBudgetNotFound
	}
	return b, nil
}

func (uc *implUseCase) saveBudget(ctx context.Context, b model.Budget) (budget.DetailOutput, error) {
	b.UpdatedAt = uc.now()
	updated, err := uc.repo.UpdateBudget(ctx, b)
	if err != nil {
		uc.l.Errorf(ctx, "uc budget save: %v", err)
		return budget.DetailOutput{}, err
	}
	return deriveMetrics(updated), nil
}
