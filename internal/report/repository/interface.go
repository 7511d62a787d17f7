package repository

import (
	"context"

	"karobar-dashboard/internal/model"
)

// ProjectRepository defines all data access methods for the Project entity.
// The default implementation is in-memory, seeded with the sample project
// set at startup.
type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetOneProject(ctx context.Context, id string) (model.Project, error)
}
