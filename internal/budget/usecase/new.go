package usecase

import (
	"time"

	"karobar-dashboard/internal/budget/repository"
	"karobar-dashboard/pkg/log"
)

// implUseCase is the private implementation of budget.UseCase.
type implUseCase struct {
	repo repository.BudgetRepository
	l    log.Logger
	now  func() time.Time
}

// New creates a new budget UseCase implementation.
func New(repo repository.BudgetRepository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
