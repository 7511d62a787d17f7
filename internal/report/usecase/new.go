package usecase

import (
	"time"

	"karobar-dashboard/internal/report/repository"
	"karobar-dashboard/pkg/log"
)

// implUseCase is the private implementation of report.UseCase.
type implUseCase struct {
	repo repository.ProjectRepository
	l    log.Logger
	now  func() time.Time
}

// New creates a new report UseCase implementation.
func New(repo repository.ProjectRepository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
