package postgre

import (
	"context"
	"database/sql"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/report/repository"
)

func (r *implRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	const query = `
		SELECT id, name, status, start_date, end_date, budget, spent,
		       tasks, completed_tasks, team_members, progress
		FROM projects ORDER BY start_date`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjects"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListProjects"), err)
			return nil, repository.ErrFailedToList
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListProjects"), err)
		return nil, repository.ErrFailedToList
	}
	return projects, nil
}

// GetOneProject returns a zero-value Project (ID == "") when not found.
func (r *implRepository) GetOneProject(ctx context.Context, id string) (model.Project, error) {
	const query = `
		SELECT id, name, status, start_date, end_date, budget, spent,
		       tasks, completed_tasks, team_members, progress
		FROM projects WHERE id = $1`

	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProject"), err)
		return model.Project{}, repository.ErrFailedToGet
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (model.Project, error) {
	var p model.Project
	if err := row.Scan(
		&p.ID, &p.Name, &p.Status, &p.StartDate, &p.EndDate, &p.Budget, &p.Spent,
		&p.Tasks, &p.CompletedTasks, &p.TeamMembers, &p.Progress,
	); err != nil {
		return model.Project{}, err
	}
	return p, nil
}
