package memory

import (
	"context"
	"sync"

	"karobar-dashboard/internal/budget/repository"
	"karobar-dashboard/internal/model"
)

// implRepository keeps budgets in insertion order, guarded by a mutex so
// concurrent handlers see consistent snapshots.
type implRepository struct {
	mu      sync.RWMutex
	budgets []model.Budget
}

// New creates an empty in-memory budget repository.
func New() repository.BudgetRepository {
	return &implRepository{}
}

func (r *implRepository) CreateBudget(ctx context.Context, b model.Budget) (model.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.budgets = append(r.budgets, clone(b))
	return b, nil
}

// GetOneBudget returns a zero-value Budget (ID == "") when not found — no
// error for not-found.
func (r *implRepository) GetOneBudget(ctx context.Context, id string) (model.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.budgets {
		if r.budgets[i].ID == id {
			return clone(r.budgets[i]), nil
		}
	}
	return model.Budget{}, nil
}

func (r *implRepository) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Budget, 0, len(r.budgets))
	for i := range r.budgets {
		out = append(out, clone(r.budgets[i]))
	}
	return out, nil
}

func (r *implRepository) UpdateBudget(ctx context.Context, b model.Budget) (model.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.budgets {
		if r.budgets[i].ID == b.ID {
			r.budgets[i] = clone(b)
			return b, nil
		}
	}
	return model.Budget{}, repository.ErrFailedToUpdate
}

// clone copies the budget including its category slice, so callers cannot
// alias the stored backing array.
func clone(b model.Budget) model.Budget {
	out := b
	out.Categories = make([]model.BudgetCategory, len(b.Categories))
	copy(out.Categories, b.Categories)
	return out
}
