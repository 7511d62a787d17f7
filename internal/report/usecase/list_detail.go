package usecase

import (
	"context"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/report"
)

// List returns all projects.
func (uc *implUseCase) List(ctx context.Context) (report.ListOutput, error) {
	projects, err := uc.repo.ListProjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListProjects: %v", err)
		return report.ListOutput{}, err
	}
	return report.ListOutput{Projects: projects, Total: len(projects)}, nil
}

// Detail returns one project with summary metrics and recommendations.
func (uc *implUseCase) Detail(ctx context.Context, id string) (report.DetailOutput, error) {
	p, err := uc.loadProject(ctx, id)
	if err != nil {
		return report.DetailOutput{}, err
	}
	return report.DetailOutput{
		Project:         p,
		Summary:         summarize(p),
		Recommendations: recommend(p),
	}, nil
}

func (uc *implUseCase) loadProject(ctx context.Context, id string) (model.Project, error) {
	p, err := uc.repo.GetOneProject(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc project load: %v", err)
		return model.Project{}, err
	}
	if p.ID == "" {
		return model.Project{}, report.ErrProjectNotFound
	}
	return p, nil
}
